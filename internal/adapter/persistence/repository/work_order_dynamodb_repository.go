package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName     = "work_orders"
	defaultWorkOrderItemsTableName = "work_order_items"

	itemTypeService = "SERVICE"
	itemTypePart    = "PART"

	// DynamoDB rejects transactions with more actions than this.
	maxTransactItems = 100
)

var ErrTransactionTooLarge = errors.New("work order has too many items for a single transaction")

type workOrderRecord struct {
	ID                      string `dynamodbav:"id"`
	CustomerID              string `dynamodbav:"customer_id"`
	VehicleID               string `dynamodbav:"vehicle_id"`
	Description             string `dynamodbav:"description"`
	Status                  string `dynamodbav:"status"`
	EstimatedCost           string `dynamodbav:"estimated_cost"`
	ActualCost              string `dynamodbav:"actual_cost,omitempty"`
	LaborCost               string `dynamodbav:"labor_cost"`
	PartsCost               string `dynamodbav:"parts_cost"`
	Diagnosis               string `dynamodbav:"diagnosis,omitempty"`
	TechnicianNotes         string `dynamodbav:"technician_notes,omitempty"`
	CustomerApproval        bool   `dynamodbav:"customer_approval"`
	EstimatedCompletionDate string `dynamodbav:"estimated_completion_date,omitempty"`
	CompletedAt             string `dynamodbav:"completed_at,omitempty"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// workOrderItemRecord holds either a service or a part line; ItemType tells which.
type workOrderItemRecord struct {
	WorkOrderID       string `dynamodbav:"work_order_id"`
	ItemKey           string `dynamodbav:"item_key"`
	ItemType          string `dynamodbav:"item_type"`
	Position          int    `dynamodbav:"position"`
	RefID             string `dynamodbav:"ref_id"`
	Name              string `dynamodbav:"name,omitempty"`
	Description       string `dynamodbav:"description,omitempty"`
	PartNumber        string `dynamodbav:"part_number,omitempty"`
	Quantity          int    `dynamodbav:"quantity"`
	UnitPrice         string `dynamodbav:"unit_price"`
	TotalPrice        string `dynamodbav:"total_price"`
	EstimatedDuration int    `dynamodbav:"estimated_duration,omitempty"`
	Status            string `dynamodbav:"status,omitempty"`
	StartedAt         string `dynamodbav:"started_at,omitempty"`
	CompletedAt       string `dynamodbav:"completed_at,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	IsApproved        bool   `dynamodbav:"is_approved,omitempty"`
	AppliedAt         string `dynamodbav:"applied_at,omitempty"`
}

// WorkOrderDynamoRepository persists the WorkOrder aggregate in DynamoDB.
//
// Table requirements:
//   - work_orders: PK id (string)
//   - work_order_items: PK work_order_id (string), SK item_key (string, "SERVICE#<id>" or "PART#<id>")
//
// Save writes the header and every current item in one TransactWriteItems call and
// deletes stored items that are no longer attached, so readers never observe a
// partially replaced collection.

type WorkOrderDynamoRepository struct {
	ddb            DynamoDBAPI
	tableName      string
	itemsTableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoDBAPI) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		itemsTableName: getenvDefault("WORK_ORDER_ITEMS_TABLE", defaultWorkOrderItemsTableName),
	}
}

func (r *WorkOrderDynamoRepository) FindByID(ctx context.Context, id string) (*entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get work order: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var header workOrderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &header); err != nil {
		return nil, fmt.Errorf("unmarshal work order: %w", err)
	}

	items, err := r.queryItems(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := fromWorkOrderRecords(header, items)
	if err != nil {
		return nil, err
	}
	return entities.RestoreWorkOrder(snap), nil
}

func (r *WorkOrderDynamoRepository) Save(ctx context.Context, wo *entities.WorkOrder) (*entities.WorkOrder, error) {
	snap := wo.Snapshot()

	header, err := attributevalue.MarshalMap(toWorkOrderRecord(snap))
	if err != nil {
		return nil, fmt.Errorf("marshal work order: %w", err)
	}
	actions := []types.TransactWriteItem{{
		Put: &types.Put{TableName: aws.String(r.tableName), Item: header},
	}}

	current := make(map[string]struct{})
	for _, it := range toItemRecords(snap) {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return nil, fmt.Errorf("marshal work order item: %w", err)
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.itemsTableName), Item: av},
		})
		current[it.ItemKey] = struct{}{}
	}

	stored, err := r.queryItems(ctx, snap.ID)
	if err != nil {
		return nil, err
	}
	for _, it := range stored {
		if _, ok := current[it.ItemKey]; ok {
			continue
		}
		actions = append(actions, types.TransactWriteItem{
			Delete: &types.Delete{TableName: aws.String(r.itemsTableName), Key: itemKey(snap.ID, it.ItemKey)},
		})
	}

	if err := r.transact(ctx, actions); err != nil {
		return nil, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	stored, err := r.queryItems(ctx, id)
	if err != nil {
		return err
	}

	actions := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		},
	}}
	for _, it := range stored {
		actions = append(actions, types.TransactWriteItem{
			Delete: &types.Delete{TableName: aws.String(r.itemsTableName), Key: itemKey(id, it.ItemKey)},
		})
	}
	return r.transact(ctx, actions)
}

func (r *WorkOrderDynamoRepository) transact(ctx context.Context, actions []types.TransactWriteItem) error {
	if len(actions) > maxTransactItems {
		return fmt.Errorf("%w: %d actions", ErrTransactionTooLarge, len(actions))
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: actions}); err != nil {
		return fmt.Errorf("write work order: %w", err)
	}
	return nil
}

func (r *WorkOrderDynamoRepository) queryItems(ctx context.Context, workOrderID string) ([]workOrderItemRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		KeyConditionExpression: aws.String("#work_order_id = :work_order_id"),
		ExpressionAttributeNames: map[string]string{
			"#work_order_id": "work_order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var items []workOrderItemRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query work order items: %w", err)
		}
		var batch []workOrderItemRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal work order items: %w", err)
		}
		items = append(items, batch...)
	}
	return items, nil
}

func itemKey(workOrderID, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
		"item_key":      &types.AttributeValueMemberS{Value: key},
	}
}

func serviceItemKey(serviceID string) string { return itemTypeService + "#" + serviceID }
func partItemKey(partID string) string { return itemTypePart + "#" + partID }

func toWorkOrderRecord(s entities.WorkOrderSnapshot) workOrderRecord {
	return workOrderRecord{
		ID:                      s.ID,
		CustomerID:              s.CustomerID,
		VehicleID:               s.VehicleID,
		Description:             s.Description,
		Status:                  string(s.Status),
		EstimatedCost:           formatMoney(s.EstimatedCost),
		ActualCost:              formatOptionalMoney(s.ActualCost),
		LaborCost:               formatMoney(s.LaborCost),
		PartsCost:               formatMoney(s.PartsCost),
		Diagnosis:               s.Diagnosis,
		TechnicianNotes:         s.TechnicianNotes,
		CustomerApproval:        s.CustomerApproval,
		EstimatedCompletionDate: formatOptionalTime(s.EstimatedCompletionDate),
		CompletedAt:             formatOptionalTime(s.CompletedAt),
		CreatedAt:               formatTime(s.CreatedAt),
		UpdatedAt:               formatTime(s.UpdatedAt),
	}
}

func toItemRecords(s entities.WorkOrderSnapshot) []workOrderItemRecord {
	out := make([]workOrderItemRecord, 0, len(s.Services)+len(s.Parts))
	for i, svc := range s.Services {
		out = append(out, workOrderItemRecord{
			WorkOrderID:       s.ID,
			ItemKey:           serviceItemKey(svc.ServiceID),
			ItemType:          itemTypeService,
			Position:          i,
			RefID:             svc.ServiceID,
			Name:              svc.ServiceName,
			Description:       svc.ServiceDescription,
			Quantity:          svc.Quantity,
			UnitPrice:         formatMoney(svc.UnitPrice),
			TotalPrice:        formatMoney(svc.TotalPrice),
			EstimatedDuration: svc.EstimatedDuration,
			Status:            string(svc.Status),
			StartedAt:         formatOptionalTime(svc.StartedAt),
			CompletedAt:       formatOptionalTime(svc.CompletedAt),
			Notes:             svc.TechnicianNotes,
		})
	}
	for i, p := range s.Parts {
		out = append(out, workOrderItemRecord{
			WorkOrderID: s.ID,
			ItemKey:     partItemKey(p.PartID),
			ItemType:    itemTypePart,
			Position:    i,
			RefID:       p.PartID,
			Name:        p.PartName,
			Description: p.PartDescription,
			PartNumber:  p.PartNumber,
			Quantity:    p.Quantity,
			UnitPrice:   formatMoney(p.UnitPrice),
			TotalPrice:  formatMoney(p.TotalPrice),
			Notes:       p.Notes,
			IsApproved:  p.IsApproved,
			AppliedAt:   formatOptionalTime(p.AppliedAt),
		})
	}
	return out
}

func fromWorkOrderRecords(h workOrderRecord, items []workOrderItemRecord) (entities.WorkOrderSnapshot, error) {
	s := entities.WorkOrderSnapshot{
		ID:               h.ID,
		CustomerID:       h.CustomerID,
		VehicleID:        h.VehicleID,
		Description:      h.Description,
		Status:           entities.WorkOrderStatus(h.Status),
		Diagnosis:        h.Diagnosis,
		TechnicianNotes:  h.TechnicianNotes,
		CustomerApproval: h.CustomerApproval,
	}

	var err error
	if s.EstimatedCost, err = parseMoney("estimated_cost", h.EstimatedCost); err != nil {
		return s, err
	}
	if s.ActualCost, err = parseOptionalMoney("actual_cost", h.ActualCost); err != nil {
		return s, err
	}
	if s.LaborCost, err = parseMoney("labor_cost", h.LaborCost); err != nil {
		return s, err
	}
	if s.PartsCost, err = parseMoney("parts_cost", h.PartsCost); err != nil {
		return s, err
	}
	if s.EstimatedCompletionDate, err = parseOptionalTime("estimated_completion_date", h.EstimatedCompletionDate); err != nil {
		return s, err
	}
	if s.CompletedAt, err = parseOptionalTime("completed_at", h.CompletedAt); err != nil {
		return s, err
	}
	if s.CreatedAt, err = parseTime("created_at", h.CreatedAt); err != nil {
		return s, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", h.UpdatedAt); err != nil {
		return s, err
	}

	sorted := make([]workOrderItemRecord, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	for _, it := range sorted {
		switch it.ItemType {
		case itemTypeService:
			svc, err := fromServiceRecord(it)
			if err != nil {
				return s, err
			}
			s.Services = append(s.Services, svc)
		case itemTypePart:
			p, err := fromPartRecord(it)
			if err != nil {
				return s, err
			}
			s.Parts = append(s.Parts, p)
		default:
			return s, fmt.Errorf("unknown work order item type %q for key %s", it.ItemType, it.ItemKey)
		}
	}
	return s, nil
}

func fromServiceRecord(it workOrderItemRecord) (entities.WorkOrderServiceSnapshot, error) {
	s := entities.WorkOrderServiceSnapshot{
		ServiceID:          refID(it),
		ServiceName:        it.Name,
		ServiceDescription: it.Description,
		Quantity:           it.Quantity,
		EstimatedDuration:  it.EstimatedDuration,
		Status:             entities.ServiceItemStatus(it.Status),
		TechnicianNotes:    it.Notes,
	}
	var err error
	if s.UnitPrice, err = parseMoney("unit_price", it.UnitPrice); err != nil {
		return s, err
	}
	if s.TotalPrice, err = parseMoney("total_price", it.TotalPrice); err != nil {
		return s, err
	}
	if s.StartedAt, err = parseOptionalTime("started_at", it.StartedAt); err != nil {
		return s, err
	}
	if s.CompletedAt, err = parseOptionalTime("completed_at", it.CompletedAt); err != nil {
		return s, err
	}
	return s, nil
}

func fromPartRecord(it workOrderItemRecord) (entities.WorkOrderPartSnapshot, error) {
	p := entities.WorkOrderPartSnapshot{
		PartID:          refID(it),
		PartName:        it.Name,
		PartDescription: it.Description,
		PartNumber:      it.PartNumber,
		Quantity:        it.Quantity,
		Notes:           it.Notes,
		IsApproved:      it.IsApproved,
	}
	var err error
	if p.UnitPrice, err = parseMoney("unit_price", it.UnitPrice); err != nil {
		return p, err
	}
	if p.TotalPrice, err = parseMoney("total_price", it.TotalPrice); err != nil {
		return p, err
	}
	if p.AppliedAt, err = parseOptionalTime("applied_at", it.AppliedAt); err != nil {
		return p, err
	}
	return p, nil
}

// refID falls back to the sort key suffix for rows written without ref_id.
func refID(it workOrderItemRecord) string {
	if it.RefID != "" {
		return it.RefID
	}
	_, id, _ := strings.Cut(it.ItemKey, "#")
	return id
}
