package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB keeps items in memory, keyed by the string values of each table's key attributes.
type fakeDynamoDB struct {
	keyAttrs     map[string][]string
	tables       map[string]map[string]map[string]types.AttributeValue
	transactions []*dynamodb.TransactWriteItemsInput
	transactErr  error
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{
		keyAttrs: map[string][]string{
			defaultWorkOrdersTableName:     {"id"},
			defaultWorkOrderItemsTableName: {"work_order_id", "item_key"},
			defaultCustomersTableName:      {"id"},
			defaultVehiclesTableName:       {"id"},
		},
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamoDB) key(table string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range f.keyAttrs[table] {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamoDB) put(table string, item map[string]types.AttributeValue) {
	if f.tables[table] == nil {
		f.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	f.tables[table][f.key(table, item)] = item
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	table := aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: f.tables[table][f.key(table, in.Key)]}, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	want := in.ExpressionAttributeValues[":work_order_id"].(*types.AttributeValueMemberS).Value
	out := &dynamodb.QueryOutput{}
	for _, item := range f.tables[aws.ToString(in.TableName)] {
		if s, ok := item["work_order_id"].(*types.AttributeValueMemberS); ok && s.Value == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (f *fakeDynamoDB) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactions = append(f.transactions, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	seen := map[string]bool{}
	for _, action := range in.TransactItems {
		var table, key string
		switch {
		case action.Put != nil:
			table = aws.ToString(action.Put.TableName)
			key = f.key(table, action.Put.Item)
		case action.Delete != nil:
			table = aws.ToString(action.Delete.TableName)
			key = f.key(table, action.Delete.Key)
		}
		if seen[table+"/"+key] {
			return nil, errors.New("ValidationException: transaction touches the same item twice")
		}
		seen[table+"/"+key] = true
	}
	for _, action := range in.TransactItems {
		switch {
		case action.Put != nil:
			f.put(aws.ToString(action.Put.TableName), action.Put.Item)
		case action.Delete != nil:
			table := aws.ToString(action.Delete.TableName)
			delete(f.tables[table], f.key(table, action.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
