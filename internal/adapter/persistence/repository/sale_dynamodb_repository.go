package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/usecase/interfaces"
)

const defaultSalesTableName = "ventas"

// DynamoAPI is the subset of *dynamodb.Client used by the sales repository.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type saleItem struct {
	ID         string   `dynamodbav:"id"`
	Folio      string   `dynamodbav:"folio,omitempty"`
	UserID     int64    `dynamodbav:"user_id,omitempty"`
	PaymentID  int64    `dynamodbav:"payment_id,omitempty"`
	ScheduleID int64    `dynamodbav:"schedule_id,omitempty"`
	RateID     int64    `dynamodbav:"rate_id,omitempty"`
	RouteLabel string   `dynamodbav:"route_label,omitempty"`
	Status     string   `dynamodbav:"status,omitempty"`
	Amount     *float64 `dynamodbav:"amount,omitempty"`
	CreatedAt  string   `dynamodbav:"created_at"`
	UpdatedAt  string   `dynamodbav:"updated_at"`
}

// SaleDynamoRepository persists sales (ventas) in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// created_at is stored in storeTimeLayout so range reads can filter with
// BETWEEN on plain strings. Reads are full paginated scans sorted in memory.
type SaleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoAPI, tableName string) *SaleDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultSalesTableName
	}
	return &SaleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SaleDynamoRepository) FindAll(ctx context.Context) ([]entities.Sale, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *SaleDynamoRepository) FindInRange(ctx context.Context, start, end time.Time) ([]entities.Sale, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatStoreTime(start)},
			":end":   &types.AttributeValueMemberS{Value: formatStoreTime(end)},
		},
	})
}

func (r *SaleDynamoRepository) List(ctx context.Context, limit int) ([]entities.Sale, error) {
	sales, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            saleKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it)
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	return r.put(ctx, s, "attribute_not_exists(#id)")
}

// Update replaces the stored sale. A missing id yields a zero Sale.
func (r *SaleDynamoRepository) Update(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	saved, err := r.put(ctx, s, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	return saved, nil
}

func (r *SaleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          saleKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *SaleDynamoRepository) put(ctx context.Context, s entities.Sale, condition string) (entities.Sale, error) {
	it := toSaleItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Sale{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it)
}

func (r *SaleDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Sale, error) {
	sales := make([]entities.Sale, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []saleItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			s, err := fromSaleItem(it)
			if err != nil {
				return nil, err
			}
			sales = append(sales, s)
		}
	}
	sortByCreation(sales)
	return sales, nil
}

func saleKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:         s.ID,
		Folio:      s.Folio,
		UserID:     s.UserID,
		PaymentID:  s.PaymentID,
		ScheduleID: s.ScheduleID,
		RateID:     s.RateID,
		RouteLabel: s.RouteLabel,
		Status:     s.Status,
		Amount:     s.Amount,
		CreatedAt:  formatStoreTime(s.CreatedAt),
		UpdatedAt:  formatStoreTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) (entities.Sale, error) {
	createdAt, err := parseStoreTime(it.CreatedAt)
	if err != nil {
		return entities.Sale{}, fmt.Errorf("sale %s created_at: %w", it.ID, err)
	}
	updatedAt, err := parseStoreTime(it.UpdatedAt)
	if err != nil {
		return entities.Sale{}, fmt.Errorf("sale %s updated_at: %w", it.ID, err)
	}
	return entities.Sale{
		ID:         it.ID,
		Folio:      it.Folio,
		UserID:     it.UserID,
		PaymentID:  it.PaymentID,
		ScheduleID: it.ScheduleID,
		RateID:     it.RateID,
		RouteLabel: it.RouteLabel,
		Status:     it.Status,
		Amount:     it.Amount,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
