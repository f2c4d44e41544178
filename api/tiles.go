package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ciztek/pwe/tiles"
)

type tileEventParams struct {
	Event string `json:"event"`
}

// getActiveTiles tells the map client which provider to render and
// whether the fallback darkening filter applies.
func (s *Server) getActiveTiles(c *gin.Context) {
	c.JSON(http.StatusOK, s.cascade.Status())
}

// reportTileEvent feeds one per-tile observation from the map client
// into the cascade.
func (s *Server) reportTileEvent(c *gin.Context) {
	var params tileEventParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Event {
	case "success", tiles.EventLoad:
		s.cascade.Report(tiles.EventLoad)
	case tiles.EventError:
		s.cascade.Report(tiles.EventError)
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) resetTiles(c *gin.Context) {
	s.cascade.Reset()
	c.JSON(http.StatusOK, s.cascade.Status())
}
