package firestoredb

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/you-humble/assembly-seeder/internal/repository/document"
)

const fieldCreatedAt = "createdAt"

// nameSpace scopes the document ids of upserted records.
var nameSpace = uuid.MustParse("3b0e7d52-91c4-4f6a-8d2e-6a5c1f0b9e17")

// NameID is the document id used when upserting by name. Names may hold
// characters Firestore rejects in ids, so they are hashed.
func NameID(collection, name string) string {
	return uuid.NewSHA1(nameSpace, []byte(collection+"/"+name)).String()
}

// Zero timestamps are filled in by the server.
type furnitureDoc struct {
	document.Furniture
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

type categoryDoc struct {
	document.Category
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

type writer struct {
	client *firestore.Client
	coll   *firestore.CollectionRef
}

func newWriter(client *firestore.Client, collection string) writer {
	return writer{client: client, coll: client.Collection(collection)}
}

// add creates a document under an auto-generated id.
func (w writer) add(ctx context.Context, doc any) (string, error) {
	ref, _, err := w.coll.Add(ctx, doc)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

// upsert replaces the document of the given name in a transaction. build gets
// the stored creation time, or the zero time when the document is new.
func (w writer) upsert(ctx context.Context, name string, build func(createdAt time.Time) any) (string, error) {
	ref := w.coll.Doc(NameID(w.coll.ID, name))

	err := w.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		return tx.Set(ref, build(storedCreatedAt(snap)))
	})
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func storedCreatedAt(snap *firestore.DocumentSnapshot) time.Time {
	if snap == nil || !snap.Exists() {
		return time.Time{}
	}
	v, err := snap.DataAt(fieldCreatedAt)
	if err != nil {
		return time.Time{}
	}
	t, _ := v.(time.Time)
	return t
}
