package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	entitydomain "github.com/facturable/facturable/internal/entity/domain"
	entitysubscriptiondomain "github.com/facturable/facturable/internal/entitysubscription/domain"
	invoicedomain "github.com/facturable/facturable/internal/invoice/domain"
	subscriptiondomain "github.com/facturable/facturable/internal/subscription/domain"
	userdomain "github.com/facturable/facturable/internal/user/domain"
	"github.com/facturable/facturable/internal/validation"
	"go.uber.org/zap"
)

var errInvalidRequestBody = errors.New("invalid request body")

type errorPayload struct {
	Type    string                  `json:"type"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func RequestLogMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// ErrorHandlingMiddleware renders the last error pushed by a handler. It only
// writes when the handler has not, so the mapped status reaches the wire.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

// AbortWithError records err for the error middleware without writing a
// status; the middleware decides the wire status.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation failed",
			Errors:  verrs.Fields,
		}
	}

	status := http.StatusInternalServerError
	typ := "internal_error"

	switch {
	case errors.Is(err, errInvalidRequestBody):
		status, typ = http.StatusBadRequest, "bad_request"
	case errors.Is(err, entitydomain.ErrNotFound),
		errors.Is(err, subscriptiondomain.ErrNotFound),
		errors.Is(err, entitysubscriptiondomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrSerieNotFound),
		errors.Is(err, invoicedomain.ErrItemNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, userdomain.ErrRoleNotFound):
		status, typ = http.StatusNotFound, "not_found"
	case errors.Is(err, entitydomain.ErrInvalidID),
		errors.Is(err, subscriptiondomain.ErrInvalidID),
		errors.Is(err, entitysubscriptiondomain.ErrInvalidID),
		errors.Is(err, invoicedomain.ErrInvalidID),
		errors.Is(err, invoicedomain.ErrInvalidSerie),
		errors.Is(err, invoicedomain.ErrInvalidInvoiceRef),
		errors.Is(err, userdomain.ErrInvalidID),
		errors.Is(err, invoicedomain.ErrNoItemsToRectify),
		errors.Is(err, invoicedomain.ErrAlreadyRectified):
		status, typ = http.StatusBadRequest, "bad_request"
	case errors.Is(err, userdomain.ErrUserExists):
		status, typ = http.StatusConflict, "conflict"
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		// do not leak internals
		msg = "internal server error"
	}

	return status, errorPayload{Type: typ, Message: msg}
}
