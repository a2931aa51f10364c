package configs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DB is the shared client, set once by ConnectDB before any route is served.
var DB *mongo.Client

// ConnectDB dials MongoDB and verifies the connection with a ping.
func ConnectDB() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
	if err != nil {
		zap.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		zap.L().Fatal("failed to ping MongoDB", zap.Error(err))
	}

	zap.L().Info("connected to MongoDB", zap.String("database", EnvDBName()))

	DB = client
	return client
}

// GetCollection returns a handle on a collection in the configured database.
func GetCollection(name string) *mongo.Collection {
	return DB.Database(EnvDBName()).Collection(name)
}
