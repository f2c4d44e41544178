package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Ciztek/pwe/cache"
	"github.com/Ciztek/pwe/external/filterapi"
	"github.com/Ciztek/pwe/logmodule"
	"github.com/Ciztek/pwe/metrics"
	"github.com/Ciztek/pwe/series"
	"github.com/Ciztek/pwe/store"
	"github.com/Ciztek/pwe/tiles"
	"github.com/Ciztek/pwe/world"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores (nil when mongo is not configured; the preference and
	// history routes answer 503 in that case)
	mongoStore store.MongoStore

	// Filter backend access
	filterClient  filterapi.Client
	pointCache    *cache.PointCache
	seriesBuilder *series.Builder
	worldBuilder  *world.Builder

	// Map background support
	cascade *tiles.Cascade

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	filterClient filterapi.Client,
	pointCache *cache.PointCache,
	seriesBuilder *series.Builder,
	worldBuilder *world.Builder,
	cascade *tiles.Cascade,
	httpClient *http.Client) *Server {
	return &Server{
		mongoStore:    mongoStore,
		filterClient:  filterClient,
		pointCache:    pointCache,
		seriesBuilder: seriesBuilder,
		worldBuilder:  worldBuilder,
		cascade:       cascade,
		httpClient:    httpClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	// dashboards are browser apps served from their own origin
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)

	apiRoute.GET("/series", s.getSeries)
	apiRoute.GET("/totals", s.getTotals)
	apiRoute.GET("/places", s.getPlaces)

	worldRoute := apiRoute.Group("/world")
	{
		worldRoute.GET("", s.getWorld)
		worldRoute.GET("/live", s.getWorldLive)
		worldRoute.GET("/latest", s.getWorldLatest)
		worldRoute.GET("/history", s.getWorldHistory)
	}

	apiRoute.POST("/cache/clear", s.clearCaches)

	tileRoute := apiRoute.Group("/tiles")
	{
		tileRoute.GET("/active", s.getActiveTiles)
		tileRoute.POST("/events", s.reportTileEvent)
		tileRoute.POST("/reset", s.resetTiles)
	}

	preferenceRoute := apiRoute.Group("/preferences")
	{
		preferenceRoute.GET("/:key", s.getPreference)
		preferenceRoute.PUT("/:key", s.setPreference)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	{
		metricRoute.GET("", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db when one is configured
	if s.mongoStore != nil {
		err := s.mongoStore.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"cache": map[string]interface{}{
				"entries": s.pointCache.Len(),
			},
			"store_configured": s.mongoStore != nil,
			"system_version":   "PWE 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
