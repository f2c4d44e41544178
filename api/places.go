package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type placesQueryParams struct {
	Tree bool `form:"tree"`
}

// getPlaces answers the flattened country list the dashboard iterates
// over, or the backend's raw hierarchy with ?tree=true.
func (s *Server) getPlaces(c *gin.Context) {
	var params placesQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	tree, err := s.filterClient.Places(c.Request.Context())
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorPlacesUnavailable, err)
		return
	}

	if params.Tree {
		c.JSON(http.StatusOK, tree)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": tree.CountryNames()})
}
