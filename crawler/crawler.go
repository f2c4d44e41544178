package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Ciztek/pwe/consts"
	"github.com/Ciztek/pwe/external/filterapi"
	"github.com/Ciztek/pwe/store"
	"github.com/Ciztek/pwe/world"
)

type worldPrebuild struct {
	mongoStore   store.MongoStore
	filterClient filterapi.Client
	worldBuilder *world.Builder
}

func (p worldPrebuild) Run() {
	end := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(defaultSpanDays - 1))

	tree, err := p.filterClient.Places(context.Background())
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("place listing from filter api")
		return
	}
	places := tree.CountryNames()

	dataset, err := p.worldBuilder.Build(context.Background(), start, end, places, consts.ScopeWorld, nil)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("build world dataset")
		return
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"id":        dataset.ID,
		"places":    len(places),
		"successes": dataset.Successes,
		"skipped":   dataset.Skipped,
	}).Debug("world dataset prebuilt")

	if err := p.mongoStore.ArchiveWorldDataset(dataset); nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("archive world dataset")
	}
}

// newPrebuild - cron job that warms the dataset archive with the
// trailing month
func newPrebuild(mongoStore store.MongoStore, filterClient filterapi.Client, worldBuilder *world.Builder) Cron {
	return &worldPrebuild{
		mongoStore:   mongoStore,
		filterClient: filterClient,
		worldBuilder: worldBuilder,
	}
}
