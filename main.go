package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/Ciztek/pwe/api"
	"github.com/Ciztek/pwe/cache"
	"github.com/Ciztek/pwe/consts"
	"github.com/Ciztek/pwe/external/filterapi"
	"github.com/Ciztek/pwe/geo"
	"github.com/Ciztek/pwe/schema"
	"github.com/Ciztek/pwe/series"
	"github.com/Ciztek/pwe/store"
	"github.com/Ciztek/pwe/tiles"
	"github.com/Ciztek/pwe/world"
)

var (
	server     *api.Server
	mongoStore store.MongoStore
)

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

// filterEndpoint resolves the backend base URL: stored operator
// override first, then configuration, then the compiled-in default.
func filterEndpoint() string {
	if mongoStore != nil {
		if endpoint, err := mongoStore.GetPreference(consts.PrefAPIEndpoint); err == nil && endpoint != "" {
			log.WithField("prefix", "init").Info("Filter endpoint from stored override: ", endpoint)
			return endpoint
		}
	}
	if endpoint := viper.GetString("filter.endpoint"); endpoint != "" {
		return endpoint
	}
	return filterapi.DefaultEndpoint
}

// loadPrimaryTable reads the operator-supplied coordinate table when
// one is configured. Without it the compiled-in centroids carry the
// resolver alone.
func loadPrimaryTable() map[string]schema.Coordinate {
	path := viper.GetString("geo.table")
	if path == "" {
		return nil
	}

	table, err := geo.LoadTable(path)
	if err != nil {
		log.WithField("prefix", "init").Error("load geo table: ", err)
		return nil
	}
	log.WithField("prefix", "init").Infof("Loaded %d coordinates from %s", len(table), path)
	return table
}

func buildResolver(primary map[string]schema.Coordinate, httpClient *http.Client) geo.Resolver {
	apiKey := viper.GetString("geo.map_apikey")
	if apiKey == "" {
		return geo.Default(primary)
	}

	mapClient, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithHTTPClient(httpClient))
	if err != nil {
		log.WithField("prefix", "init").Error("create maps client: ", err)
		return geo.Default(primary)
	}
	return geo.WithGeocoding(primary, mapClient)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	timeout := viper.GetDuration("filter.timeout")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	httpClient := &http.Client{
		Timeout: timeout,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// initialise mongodb connections when one is configured; the data
	// routes work without it
	if conn := viper.GetString("mongo.conn"); conn != "" {
		opts := options.Client().ApplyURI(conn)
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		err = mongoClient.Connect(context.Background())
		if nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}

		mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
		log.WithField("prefix", "init").Info("Initialized mongo store")
	} else {
		log.WithField("prefix", "init").Info("No mongo configured, preference and history routes disabled")
	}

	// Filter backend client and the layers over it
	filterClient := filterapi.New(filterEndpoint(), httpClient)
	pointCache := cache.NewPointCache(filterClient.Day)
	seriesBuilder := series.NewBuilder(filterClient, pointCache)

	// Coordinate resolver: operator table, compiled-in centroids,
	// aliases, normalized matching, and a geocoding tail when a maps
	// key is configured
	resolver := buildResolver(loadPrimaryTable(), httpClient)

	worldBuilder := world.NewBuilder(seriesBuilder, resolver, viper.GetDuration("world.item_timeout"))

	cascade := tiles.NewCascade(tiles.Config{})

	// Init http server
	server = api.NewServer(
		mongoStore,
		filterClient,
		pointCache,
		seriesBuilder,
		worldBuilder,
		cascade,
		httpClient)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
