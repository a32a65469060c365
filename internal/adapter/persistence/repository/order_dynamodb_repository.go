package repository

import (
	"context"
	"strconv"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type orderClientItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	Document   string `dynamodbav:"document"`
	Street     string `dynamodbav:"street"`
	Number     string `dynamodbav:"number"`
	Complement string `dynamodbav:"complement,omitempty"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state"`
	ZipCode    string `dynamodbav:"zip_code"`
}

type orderItem struct {
	ID        string          `dynamodbav:"id"`
	Client    orderClientItem `dynamodbav:"client"`
	Lines     []orderLineItem `dynamodbav:"lines"`
	Status    string          `dynamodbav:"status"`
	CreatedAt string          `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The client and line snapshots are embedded in the order row: an order is
// append-only and read back as a whole, so there is nothing to normalize.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) AddOrder(ctx context.Context, order entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderItem(order))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(order entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineItem{
			ID:          line.ID,
			Name:        line.Name,
			Description: line.Description,
			UnitPrice:   floatToString(line.UnitPrice),
		})
	}
	return orderItem{
		ID: order.ID,
		Client: orderClientItem{
			ID:         order.Client.ID,
			Name:       order.Client.Name,
			Email:      order.Client.Email,
			Document:   order.Client.Document,
			Street:     order.Client.Address.Street,
			Number:     order.Client.Address.Number,
			Complement: order.Client.Address.Complement,
			City:       order.Client.Address.City,
			State:      order.Client.Address.State,
			ZipCode:    order.Client.Address.ZipCode,
		},
		Lines:     lines,
		Status:    string(order.Status),
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderLine, 0, len(it.Lines))
	for _, line := range it.Lines {
		price, _ := strconv.ParseFloat(line.UnitPrice, 64)
		lines = append(lines, entities.OrderLine{
			ID:          line.ID,
			Name:        line.Name,
			Description: line.Description,
			UnitPrice:   price,
		})
	}
	return entities.Order{
		ID: it.ID,
		Client: entities.Client{
			ID:       it.Client.ID,
			Name:     it.Client.Name,
			Email:    it.Client.Email,
			Document: it.Client.Document,
			Address: entities.Address{
				Street:     it.Client.Street,
				Number:     it.Client.Number,
				Complement: it.Client.Complement,
				City:       it.Client.City,
				State:      it.Client.State,
				ZipCode:    it.Client.ZipCode,
			},
		},
		Lines:  lines,
		Status: entities.OrderStatus(it.Status),
	}
}
