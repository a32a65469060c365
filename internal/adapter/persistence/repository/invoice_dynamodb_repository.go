package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName     = "invoices"
	defaultInvoiceItemsTableName = "invoice_items"
	invoiceItemsInvoiceIDIndex   = "invoice_id-index"
)

type invoiceItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
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

type invoiceLineItem struct {
	ID        string `dynamodbav:"id"`
	InvoiceID string `dynamodbav:"invoice_id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
}

// InvoiceDynamoRepository persists Invoice aggregates in DynamoDB.
//
// Table requirements:
//   - invoices: PK id (string)
//   - invoice_items: PK id (string), GSI invoice_id-index (PK: invoice_id)
//
// Generate writes the invoice row and every item row in one transaction, so a
// stored invoice always has its full item set.

type InvoiceDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	itemsTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		itemsTable: getenvDefault("INVOICE_ITEMS_TABLE", defaultInvoiceItemsTableName),
	}
}

func (r *InvoiceDynamoRepository) Generate(ctx context.Context, invoice entities.Invoice) (entities.Invoice, error) {
	header, err := attributevalue.MarshalMap(toInvoiceItem(invoice))
	if err != nil {
		return entities.Invoice{}, err
	}

	writes := make([]types.TransactWriteItem, 0, len(invoice.Items)+1)
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                header,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, line := range invoice.Items {
		av, err := attributevalue.MarshalMap(invoiceLineItem{
			ID:        line.ID,
			InvoiceID: invoice.ID,
			Name:      line.Name,
			Price:     floatToString(line.Price),
		})
		if err != nil {
			return entities.Invoice{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTable),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return invoice, nil
}

func (r *InvoiceDynamoRepository) Find(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, interfaces.ErrInvoiceNotFound
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it, lines), nil
}

func (r *InvoiceDynamoRepository) findLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		IndexName:              aws.String(invoiceItemsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entities.InvoiceLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		price, _ := strconv.ParseFloat(it.Price, 64)
		lines = append(lines, entities.InvoiceLine{ID: it.ID, Name: it.Name, Price: price})
	}
	// The index returns rows in arbitrary order; keep reads deterministic.
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}

func toInvoiceItem(invoice entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:         invoice.ID,
		Name:       invoice.Name,
		Document:   invoice.Document,
		Street:     invoice.Address.Street,
		Number:     invoice.Address.Number,
		Complement: invoice.Address.Complement,
		City:       invoice.Address.City,
		State:      invoice.Address.State,
		ZipCode:    invoice.Address.ZipCode,
		CreatedAt:  invoice.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  invoice.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem, lines []entities.InvoiceLine) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Invoice{
		ID:       it.ID,
		Name:     it.Name,
		Document: it.Document,
		Address: entities.Address{
			Street:     it.Street,
			Number:     it.Number,
			Complement: it.Complement,
			City:       it.City,
			State:      it.State,
			ZipCode:    it.ZipCode,
		},
		Items:     lines,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
