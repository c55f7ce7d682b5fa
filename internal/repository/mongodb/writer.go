package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// writer holds the insert and upsert paths shared by every collection.
type writer struct {
	coll *mongo.Collection
	now  func() time.Time
}

func newWriter(coll *mongo.Collection) writer {
	return writer{coll: coll, now: func() time.Time { return time.Now().UTC() }}
}

// insertUpdate stamps both timestamps with the server clock.
func insertUpdate(doc any) bson.D {
	return bson.D{
		{Key: "$set", Value: doc},
		{Key: "$currentDate", Value: bson.D{
			{Key: "createdAt", Value: true},
			{Key: "updatedAt", Value: true},
		}},
	}
}

// upsertUpdate keeps createdAt of an existing document and drops the unset
// optional fields.
func upsertUpdate(doc any, unset []string, now time.Time) bson.D {
	upd := bson.D{
		{Key: "$set", Value: doc},
		{Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
	if len(unset) > 0 {
		fields := make(bson.D, 0, len(unset))
		for _, f := range unset {
			fields = append(fields, bson.E{Key: f, Value: ""})
		}
		upd = append(upd, bson.E{Key: "$unset", Value: fields})
	}

	return upd
}

// insert writes doc under a fresh ObjectID.
func (w writer) insert(ctx context.Context, doc any) (string, error) {
	id := bson.NewObjectID()

	_, err := w.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		insertUpdate(doc),
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return "", err
	}

	return id.Hex(), nil
}

// upsertByName replaces the document with the same name or creates it.
func (w writer) upsertByName(ctx context.Context, name string, doc any, unset []string) (string, error) {
	var out struct {
		ID bson.ObjectID `bson:"_id"`
	}

	err := w.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "name", Value: name}},
		upsertUpdate(doc, unset, w.now()),
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After).
			SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("upsert %q returned no document", name)
		}
		return "", err
	}

	return out.ID.Hex(), nil
}
