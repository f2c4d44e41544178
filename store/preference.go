package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ciztek/pwe/consts"
	"github.com/Ciztek/pwe/schema"
)

var (
	ErrPreferenceNotFound = fmt.Errorf("preference not found")
	ErrUnknownPreference  = fmt.Errorf("unknown preference key")
)

// Preference - persisted client key/value settings
type Preference interface {
	GetPreference(key string) (string, error)
	SetPreference(key, value string) error
}

// GetPreference returns the stored value of a whitelisted key.
func (m *mongoDB) GetPreference(key string) (string, error) {
	if !consts.IsPreferenceKey(key) {
		return "", ErrUnknownPreference
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PreferenceCollection)

	var preference schema.Preference
	if err := c.FindOne(ctx, bson.M{"key": key}).Decode(&preference); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrPreferenceNotFound
		}
		return "", err
	}

	return preference.Value, nil
}

// SetPreference upserts the value of a whitelisted key.
func (m *mongoDB) SetPreference(key, value string) error {
	if !consts.IsPreferenceKey(key) {
		return ErrUnknownPreference
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PreferenceCollection)

	opts := options.Replace().SetUpsert(true)
	_, err := c.ReplaceOne(ctx, bson.M{"key": key}, schema.Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Unix(),
	}, opts)

	return err
}
