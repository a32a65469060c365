package database

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tableSpec struct {
	envKey      string
	defaultName string
	gsi         []types.GlobalSecondaryIndex
	extraAttrs  []types.AttributeDefinition
}

// shopTables describes every table the repositories expect. All tables key on
// a string id; invoice_items additionally carries a GSI to query items by
// their owning invoice.
var shopTables = []tableSpec{
	{envKey: "CLIENTS_TABLE", defaultName: "clients"},
	{envKey: "PRODUCTS_TABLE", defaultName: "products"},
	{envKey: "ORDERS_TABLE", defaultName: "orders"},
	{envKey: "INVOICES_TABLE", defaultName: "invoices"},
	{
		envKey:      "INVOICE_ITEMS_TABLE",
		defaultName: "invoice_items",
		extraAttrs: []types.AttributeDefinition{
			{AttributeName: aws.String("invoice_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		gsi: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String("invoice_id-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("invoice_id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	},
}

// EnsureLocalTables creates the shop tables against a local DynamoDB endpoint.
// Existing tables are left untouched.
func EnsureLocalTables(ctx context.Context, client *dynamodb.Client) error {
	for _, spec := range shopTables {
		name := getenvDefault(spec.envKey, spec.defaultName)
		attrs := append([]types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		}, spec.extraAttrs...)

		_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			AttributeDefinitions: attrs,
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: spec.gsi,
			BillingMode:            types.BillingModePayPerRequest,
		})
		if err != nil {
			var exists *types.ResourceInUseException
			if errors.As(err, &exists) {
				continue
			}
			return err
		}
		log.Printf("[database][dynamodb] created table %s", name)
	}
	return nil
}
