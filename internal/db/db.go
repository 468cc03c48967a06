package db

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdulWasayUl/go-weather-widget/internal/config"
	"github.com/AbdulWasayUl/go-weather-widget/internal/db/migrations"
	"github.com/AbdulWasayUl/go-weather-widget/internal/logger"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectMongoDB(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo URI is not configured")
	}

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	if cfg.MongoUser != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   cfg.MongoUser,
			Password:   cfg.MongoPass,
			AuthSource: cfg.MongoAuthDB,
		})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(ctxTimeout, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB!")
	return client, nil
}

func DisconnectMongoDB(ctx context.Context, client *mongo.Client) error {
	if err := client.Disconnect(ctx); err != nil {
		return err
	}
	logger.Info("Disconnected from MongoDB.")
	return nil
}

func RunMigrations(ctx context.Context, client *mongo.Client, cfg *config.Config) error {
	migrations := []models.Migration{
		{Name: "initial_presets", Func: migrations.SeedPresets(cfg)},
	}

	coll := client.Database(cfg.DBWeather).Collection(cfg.CollectionMigrationsHistory)

	for _, m := range migrations {
		var result struct{ Name string }
		err := coll.FindOne(ctx, bson.M{"name": m.Name}).Decode(&result)
		if err == mongo.ErrNoDocuments {
			logger.Info("Running migration: %s", m.Name)
			if err := m.Func(ctx, client); err != nil {
				logger.Error("Error applying migration %s: %v", m.Name, err)
				return err
			}
			_, err = coll.InsertOne(ctx, bson.M{"name": m.Name, "applied_at": time.Now()})
			if err != nil {
				return err
			}
			logger.Info("Migration %s applied successfully.", m.Name)
		} else if err != nil {
			return err
		} else {
			logger.Info("Migration %s already applied, skipping.", m.Name)
		}
	}

	return nil
}

// GetPresets lists presets in their seeded order.
func GetPresets(ctx context.Context, client *mongo.Client, dbName, collectionName string) ([]models.Preset, error) {
	coll := client.Database(dbName).Collection(collectionName)

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	presets := []models.Preset{}
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// PresetStore binds GetPresets to one collection.
type PresetStore struct {
	Client     *mongo.Client
	DBName     string
	Collection string
}

func NewPresetStore(client *mongo.Client, cfg *config.Config) *PresetStore {
	return &PresetStore{Client: client, DBName: cfg.DBWeather, Collection: cfg.CollectionPresets}
}

func (s *PresetStore) List(ctx context.Context) ([]models.Preset, error) {
	return GetPresets(ctx, s.Client, s.DBName, s.Collection)
}
