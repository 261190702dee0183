package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"mecanica_workorders/internal/domain/valueobjects"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

// DynamoDBAPI is the part of *dynamodb.Client the repositories use.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(field, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return t, nil
}

func parseOptionalTime(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := parseTime(field, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Amounts are stored as decimal strings so no precision is lost on the way back.
func formatMoney(m valueobjects.Money) string {
	return m.Decimal().String()
}

func formatOptionalMoney(m *valueobjects.Money) string {
	if m == nil {
		return ""
	}
	return formatMoney(*m)
}

func parseMoney(field, v string) (valueobjects.Money, error) {
	if v == "" {
		return valueobjects.ZeroMoney(), nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return valueobjects.Money{}, fmt.Errorf("parse %s: %w", field, err)
	}
	m, err := valueobjects.NewMoneyFromDecimal(d)
	if err != nil {
		return valueobjects.Money{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return m, nil
}

func parseOptionalMoney(field, v string) (*valueobjects.Money, error) {
	if v == "" {
		return nil, nil
	}
	m, err := parseMoney(field, v)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
