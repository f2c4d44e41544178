package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ciztek/pwe/cache"
	"github.com/Ciztek/pwe/external/filterapi"
	"github.com/Ciztek/pwe/geo"
	"github.com/Ciztek/pwe/series"
	"github.com/Ciztek/pwe/store"
	"github.com/Ciztek/pwe/world"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second

	// one dataset spanning the trailing month, ending yesterday so
	// every covered day has a complete report
	defaultSpanDays = 30
)

type Cron interface {
	Run()
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pwe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pwe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	httpClient := &http.Client{
		Timeout: defaultTimeout,
	}

	endpoint := viper.GetString("filter.endpoint")
	filterClient := filterapi.New(endpoint, httpClient)
	seriesBuilder := series.NewBuilder(filterClient, cache.NewPointCache(filterClient.Day))
	worldBuilder := world.NewBuilder(seriesBuilder, geo.Default(nil), viper.GetDuration("world.item_timeout"))

	prebuild := newPrebuild(mStore, filterClient, worldBuilder)
	prebuild.Run()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if mongoClient != nil {
		log.Info("Shutting down mongo store")
		_ = mongoClient.Disconnect(ctx)
	}
}
