package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/facturable/facturable/internal/invoice/domain"
	userdomain "github.com/facturable/facturable/internal/user/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The handler never writes a status itself; the middleware must decide the
// wire status from the recorded error.
func TestAbortWithError_MappedStatusReachesWire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"user conflict", userdomain.ErrUserExists, http.StatusConflict, "conflict"},
		{"user not found", userdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"invoice not found", invoicedomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"nothing to rectify", invoicedomain.ErrNoItemsToRectify, http.StatusBadRequest, "bad_request"},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(zap.NewNop())
			engine.GET("/boom", func(c *gin.Context) {
				AbortWithError(c, tc.err)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.typ, resp.Error.Type)
		})
	}
}

func TestMapError_OpaqueInternalMessage(t *testing.T) {
	status, payload := mapError(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", payload.Message)
}
