package dynamo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	attrID        = "id"
	attrCreatedAt = "createdAt"
	attrUpdatedAt = "updatedAt"
)

// nameSpace scopes the deterministic ids of upserted records.
var nameSpace = uuid.MustParse("8f5a2c1e-4b7d-4e0a-9c36-2d1f0b6e7a54")

type writer struct {
	api   API
	table string
	now   func() time.Time
	newID func() string
}

func newWriter(api API, table string) writer {
	return writer{
		api:   api,
		table: table,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// NameID is the stable item id used when upserting by name.
func NameID(table, name string) string {
	return uuid.NewSHA1(nameSpace, []byte(table+"/"+name)).String()
}

func (w writer) put(ctx context.Context, doc any) (string, error) {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	id := w.newID()
	now := &types.AttributeValueMemberS{Value: w.now().Format(time.RFC3339Nano)}
	item[attrID] = &types.AttributeValueMemberS{Value: id}
	item[attrCreatedAt] = now
	item[attrUpdatedAt] = now

	_, err = w.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(w.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": attrID,
		},
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

func (w writer) upsertByName(ctx context.Context, name string, doc any, remove []string) (string, error) {
	attrs, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	id := NameID(w.table, name)
	in := updateInput(w.table, id, attrs, remove, w.now())
	if _, err := w.api.UpdateItem(ctx, in); err != nil {
		return "", err
	}

	return id, nil
}

// updateInput sets every document attribute, removes the empty optional ones
// and keeps createdAt once written.
func updateInput(table, id string, attrs map[string]types.AttributeValue, remove []string, now time.Time) *dynamodb.UpdateItemInput {
	delete(attrs, attrID)
	delete(attrs, attrCreatedAt)
	delete(attrs, attrUpdatedAt)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := map[string]string{
		"#createdAt": attrCreatedAt,
		"#updatedAt": attrUpdatedAt,
	}
	values := map[string]types.AttributeValue{
		":now": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}

	expr := "SET "
	for i, k := range keys {
		n, v := "#f"+strconv.Itoa(i), ":v"+strconv.Itoa(i)
		names[n] = k
		values[v] = attrs[k]
		expr += n + " = " + v + ", "
	}
	expr += "#createdAt = if_not_exists(#createdAt, :now), #updatedAt = :now"

	for i, k := range remove {
		n := "#r" + strconv.Itoa(i)
		names[n] = k
		if i == 0 {
			expr += " REMOVE " + n
		} else {
			expr += ", " + n
		}
	}

	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}
