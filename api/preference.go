package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ciztek/pwe/store"
)

type preferenceBody struct {
	Value string `json:"value"`
}

func (s *Server) getPreference(c *gin.Context) {
	if s.mongoStore == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreNotConfigured)
		return
	}

	key := c.Param("key")
	value, err := s.mongoStore.GetPreference(key)
	switch err {
	case nil:
	case store.ErrUnknownPreference:
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPreference)
		return
	case store.ErrPreferenceNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorPreferenceNotFound)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

func (s *Server) setPreference(c *gin.Context) {
	if s.mongoStore == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreNotConfigured)
		return
	}

	var body preferenceBody
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	key := c.Param("key")
	switch err := s.mongoStore.SetPreference(key, body.Value); err {
	case nil:
	case store.ErrUnknownPreference:
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPreference)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
