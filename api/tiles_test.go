package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ciztek/pwe/tiles"
)

func newTileServer() *Server {
	return &Server{
		cascade: tiles.NewCascade(tiles.Config{}),
	}
}

func TestGetActiveTiles(t *testing.T) {
	s := newTileServer()
	defer s.cascade.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.getActiveTiles)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var status tiles.Status
	err := json.Unmarshal([]byte(w.Body.String()), &status)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, tiles.StateTrying, status.State, "wrong initial state")
	assert.NotEmpty(t, status.Provider.URL, "map left without a layer")
}

func TestReportTileEvent(t *testing.T) {
	s := newTileServer()
	defer s.cascade.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/active", s.getActiveTiles)
	router.POST("/events", s.reportTileEvent)

	req := httptest.NewRequest("POST", "/events", strings.NewReader(`{"event": "success"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/active", nil))

	var status tiles.Status
	err := json.Unmarshal([]byte(w.Body.String()), &status)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, tiles.StateSteady, status.State, "wrong state after load")
}

func TestReportTileEventUnknownKind(t *testing.T) {
	s := newTileServer()
	defer s.cascade.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/events", s.reportTileEvent)

	req := httptest.NewRequest("POST", "/events", strings.NewReader(`{"event": "maybe"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestResetTiles(t *testing.T) {
	s := newTileServer()
	defer s.cascade.Stop()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/events", s.reportTileEvent)
	router.POST("/reset", s.resetTiles)

	req := httptest.NewRequest("POST", "/events", strings.NewReader(`{"event": "load"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/reset", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var status tiles.Status
	err := json.Unmarshal([]byte(w.Body.String()), &status)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, tiles.StateTrying, status.State, "wrong state after reset")
	assert.Equal(t, 0, status.CandidateIdx, "wrong candidate after reset")
}
