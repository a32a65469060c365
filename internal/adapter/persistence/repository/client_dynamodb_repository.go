package repository

import (
	"context"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
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
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, client entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(client))
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(client entities.Client) clientItem {
	return clientItem{
		ID:         client.ID,
		Name:       client.Name,
		Email:      client.Email,
		Document:   client.Document,
		Street:     client.Address.Street,
		Number:     client.Address.Number,
		Complement: client.Address.Complement,
		City:       client.Address.City,
		State:      client.Address.State,
		ZipCode:    client.Address.ZipCode,
		CreatedAt:  client.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  client.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Client{
		ID:       it.ID,
		Name:     it.Name,
		Email:    it.Email,
		Document: it.Document,
		Address: entities.Address{
			Street:     it.Street,
			Number:     it.Number,
			Complement: it.Complement,
			City:       it.City,
			State:      it.State,
			ZipCode:    it.ZipCode,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
