package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Per-operation deadline applied by every repository call.
const opTimeout = 5 * time.Second

const (
	CollectionStores     = "stores"
	CollectionBillboards = "billboards"
	CollectionCategories = "categories"
	CollectionSizes      = "sizes"
	CollectionColors     = "colors"
	CollectionProducts   = "products"
	CollectionOrders     = "orders"
	CollectionUsers      = "users"
)

// Client owns the driver connection. It is constructed once in main and passed
// down; there is no ambient connection state.
type Client struct {
	mc *mongo.Client
	db *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := mc.Ping(ctx, readpref.Primary()); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &Client{mc: mc, db: mc.Database(dbName)}, nil
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

func (c *Client) Close(ctx context.Context) error {
	return c.mc.Disconnect(ctx)
}
