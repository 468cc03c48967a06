package migrations

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/AbdulWasayUl/go-weather-widget/internal/config"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:embed data/*.json
var dataFS embed.FS

func loadPresets(fileName string) ([]models.Preset, error) {
	filePath := path.Join("data", fileName)

	data, err := dataFS.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	var presets []models.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON data from %s: %w", filePath, err)
	}
	return presets, nil
}

func createCollectionIfNotExists(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 { // NamespaceExists
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}

// SeedPresets creates the presets collection with a unique name index and
// loads the bundled places into it.
func SeedPresets(cfg *config.Config) func(ctx context.Context, client *mongo.Client) error {
	return func(ctx context.Context, client *mongo.Client) error {
		db := client.Database(cfg.DBWeather)

		if err := createCollectionIfNotExists(ctx, db, cfg.CollectionPresets); err != nil {
			return err
		}
		coll := db.Collection(cfg.CollectionPresets)

		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create presets index: %w", err)
		}

		presets, err := loadPresets("presets.json")
		if err != nil {
			return err
		}

		for i, p := range presets {
			_, err := coll.UpdateOne(ctx,
				bson.M{"name": p.Name},
				bson.M{"$setOnInsert": bson.M{"name": p.Name, "country": p.Country, "lat": p.Lat, "lon": p.Lon, "order": i}},
				options.Update().SetUpsert(true))
			if err != nil {
				return fmt.Errorf("failed to insert preset %s: %w", p.Name, err)
			}
		}
		return nil
	}
}
