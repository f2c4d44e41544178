package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ciztek/pwe/schema"
	"github.com/Ciztek/pwe/utils"
)

type rangeQueryParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Country   string `form:"country"`
}

// bindRange reads and validates the date-range parameters every data
// route shares. A missing or malformed date aborts the request.
func bindRange(c *gin.Context) (start, end time.Time, place string, ok bool) {
	var params rangeQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	var err error
	if start, err = utils.ParseDate(params.StartDate); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("start_date: %s", err))
		return
	}
	if end, err = utils.ParseDate(params.EndDate); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("end_date: %s", err))
		return
	}

	return start, end, params.Country, true
}

func (s *Server) getSeries(c *gin.Context) {
	start, end, place, ok := bindRange(c)
	if !ok {
		return
	}

	points, err := s.seriesBuilder.Build(c.Request.Context(), start, end, place)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorFilterBackend, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": points})
}

func (s *Server) getTotals(c *gin.Context) {
	start, end, place, ok := bindRange(c)
	if !ok {
		return
	}

	point, err := s.seriesBuilder.RangeTotals(c.Request.Context(), start, end, place)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorFilterBackend, err)
		return
	}

	// a backend 404 is an empty range, not an error
	if point == nil {
		c.JSON(http.StatusOK, gin.H{
			"totals":   schema.Totals{},
			"has_data": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":   point.Totals(),
		"has_data": true,
	})
}

func (s *Server) clearCaches(c *gin.Context) {
	s.pointCache.Clear()
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
