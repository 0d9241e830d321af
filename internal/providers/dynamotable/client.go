// Package dynamotable reads the archive tables directly through the AWS SDK,
// for deployments that skip the HTTP gateway.
package dynamotable

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"mobile-archive-service/internal/domain/collections"
	"mobile-archive-service/internal/domain/games"
	"mobile-archive-service/internal/providers"
)

const (
	gameKeyAttribute       = "Title"
	collectionKeyAttribute = "ProductID"
)

// DynamoAPI is the subset of the DynamoDB client the provider uses.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Config controls the direct table client.
type Config struct {
	GamesTable       string
	CollectionsTable string
	Region           string
	// API overrides the SDK client, primarily for tests.
	API DynamoAPI
}

// Client fetches records straight from the DynamoDB tables and maps them to
// canonical records with the same mappers the gateway path uses.
type Client struct {
	api              DynamoAPI
	gamesTable       string
	collectionsTable string
}

// NewClient constructs a direct table client, loading the default AWS
// configuration chain unless an API override is provided.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	api := cfg.API
	if api == nil {
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("dynamotable: load aws config: %w", err)
		}
		api = dynamodb.NewFromConfig(awsCfg)
	}
	return &Client{
		api:              api,
		gamesTable:       cfg.GamesTable,
		collectionsTable: cfg.CollectionsTable,
	}, nil
}

// FetchGames scans the games table, or gets one item when id is set.
func (c *Client) FetchGames(ctx context.Context, id string) ([]games.Record, error) {
	items, err := c.fetch(ctx, c.gamesTable, gameKeyAttribute, id)
	if err != nil {
		return nil, fmt.Errorf("dynamotable: fetch games: %w", err)
	}
	out := make([]games.Record, 0, len(items))
	for _, item := range items {
		out = append(out, providers.MapGame(itemToPlain(item)))
	}
	return out, nil
}

// FetchCollections scans the collections table, or gets one item when id is set.
func (c *Client) FetchCollections(ctx context.Context, id string) ([]collections.Record, error) {
	items, err := c.fetch(ctx, c.collectionsTable, collectionKeyAttribute, id)
	if err != nil {
		return nil, fmt.Errorf("dynamotable: fetch collections: %w", err)
	}
	out := make([]collections.Record, 0, len(items))
	for _, item := range items {
		out = append(out, providers.MapCollection(itemToPlain(item)))
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, table, keyAttribute, id string) ([]map[string]types.AttributeValue, error) {
	if id != "" {
		out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				keyAttribute: &types.AttributeValueMemberS{Value: id},
			},
		})
		if err != nil {
			return nil, err
		}
		if out.Item == nil {
			return nil, nil
		}
		return []map[string]types.AttributeValue{out.Item}, nil
	}

	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := c.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}
