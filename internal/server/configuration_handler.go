package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetConfiguration(c *gin.Context) {
	rec, err := s.configurationSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ReplaceConfiguration swaps the whole settings map in one write. Settings
// are free-form key/value pairs, so there is no rule table here.
func (s *Server) ReplaceConfiguration(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	var rec map[string]any
	if err := json.Unmarshal(body, &rec); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	out, err := s.configurationSvc.Replace(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
