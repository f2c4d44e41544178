package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Ciztek/pwe/consts"
	"github.com/Ciztek/pwe/schema"
	"github.com/Ciztek/pwe/store"
)

const defaultHistoryLimit = int64(10)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the dashboard runs on its own origin, same policy as the CORS
	// config of the rest of /api
	CheckOrigin: func(r *http.Request) bool { return true },
}

func scopeOf(c *gin.Context) string {
	scope := c.Query("scope")
	if scope == "" {
		scope = consts.ScopeWorld
	}
	return scope
}

// getWorld runs a full world dataset build and answers once it is
// done. Dashboards that want partial results use /world/live instead.
func (s *Server) getWorld(c *gin.Context) {
	start, end, _, ok := bindRange(c)
	if !ok {
		return
	}
	scope := scopeOf(c)

	tree, err := s.filterClient.Places(c.Request.Context())
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorPlacesUnavailable, err)
		return
	}

	dataset, err := s.worldBuilder.Build(c.Request.Context(), start, end, tree.CountryNames(), scope, nil)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorFilterBackend, err)
		return
	}

	s.archiveDataset(dataset)

	c.JSON(http.StatusOK, dataset)
}

// getWorldLive streams WorldSnapshot messages over a websocket while
// the build runs: progress after every fetched place, a sorted partial
// leaderboard every twentieth, and a final message with done=true.
// Closing the socket cancels the build.
func (s *Server) getWorldLive(c *gin.Context) {
	start, end, _, ok := bindRange(c)
	if !ok {
		return
	}
	scope := scopeOf(c)

	tree, err := s.filterClient.Places(c.Request.Context())
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorPlacesUnavailable, err)
		return
	}
	places := tree.CountryNames()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithField("error", err).Error("upgrade world live socket")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// read pump: the client never sends data, but a read error is how
	// we learn the socket is gone
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	snapshots := make(chan schema.WorldSnapshot, 16)
	publish := func(snapshot schema.WorldSnapshot) {
		select {
		case snapshots <- snapshot:
		case <-ctx.Done():
		}
	}

	done := make(chan struct{})
	var dataset *schema.WorldDataset
	go func() {
		defer close(done)
		defer close(snapshots)
		dataset, _ = s.worldBuilder.Build(ctx, start, end, places, scope, publish)
	}()

	for snapshot := range snapshots {
		if err := conn.WriteJSON(snapshot); err != nil {
			cancel()
			break
		}
	}
	<-done

	if dataset != nil {
		s.archiveDataset(dataset)
	}
}

// getWorldLatest serves the newest archived dataset for a scope, the
// one the crawler prebuilds, so dashboards can paint before a live
// build finishes.
func (s *Server) getWorldLatest(c *gin.Context) {
	if s.mongoStore == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreNotConfigured)
		return
	}

	dataset, err := s.mongoStore.LatestWorldDataset(scopeOf(c))
	switch err {
	case nil:
	case store.ErrDatasetNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorDatasetNotFound)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, dataset)
}

func (s *Server) getWorldHistory(c *gin.Context) {
	if s.mongoStore == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreNotConfigured)
		return
	}

	var params struct {
		Limit int64 `form:"limit"`
	}
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Limit <= 0 {
		params.Limit = defaultHistoryLimit
	}

	datasets, err := s.mongoStore.ListWorldDatasets(params.Limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

// archiveDataset keeps a finished build for history queries. Archiving
// is best effort; a store failure never fails the request that built
// the dataset.
func (s *Server) archiveDataset(dataset *schema.WorldDataset) {
	if s.mongoStore == nil {
		return
	}
	if err := s.mongoStore.ArchiveWorldDataset(dataset); err != nil {
		log.WithField("error", err).Warn("archive world dataset")
	}
}
