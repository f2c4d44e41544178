package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ciztek/pwe/schema"
)

var (
	ErrDatasetNotFound = fmt.Errorf("world dataset not found")
)

// DatasetArchive - completed world datasets kept for history queries
type DatasetArchive interface {
	ArchiveWorldDataset(dataset *schema.WorldDataset) error
	ListWorldDatasets(limit int64) ([]schema.WorldDataset, error)
	LatestWorldDataset(scope string) (*schema.WorldDataset, error)
}

// ArchiveWorldDataset stores one completed dataset.
func (m *mongoDB) ArchiveWorldDataset(dataset *schema.WorldDataset) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.WorldDatasetCollection)

	_, err := c.InsertOne(ctx, dataset)
	return err
}

// ListWorldDatasets returns archived datasets, newest first.
func (m *mongoDB) ListWorldDatasets(limit int64) ([]schema.WorldDataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.WorldDatasetCollection)

	opts := options.Find().SetSort(bson.M{"created_ts": -1}).SetLimit(limit)
	cur, err := c.Find(ctx, bson.M{}, opts)
	if nil != err {
		return nil, err
	}
	defer cur.Close(ctx)

	datasets := []schema.WorldDataset{}
	if err := cur.All(ctx, &datasets); nil != err {
		return nil, err
	}

	return datasets, nil
}

// LatestWorldDataset returns the newest archived dataset for a scope.
func (m *mongoDB) LatestWorldDataset(scope string) (*schema.WorldDataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.WorldDatasetCollection)

	opts := options.FindOne().SetSort(bson.M{"created_ts": -1})

	var dataset schema.WorldDataset
	if err := c.FindOne(ctx, bson.M{"scope": scope}, opts).Decode(&dataset); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDatasetNotFound
		}
		return nil, err
	}

	return &dataset, nil
}
