package server

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/facturable/facturable/internal/i18n"
	"github.com/facturable/facturable/internal/validation"
)

// bindRecord validates the raw request body against a rule table and, once
// valid, decodes the same bytes into the typed record.
func bindRecord[T any](c *gin.Context, contract validation.Contract, t i18n.Translator) (*T, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, errInvalidRequestBody
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errInvalidRequestBody
	}

	if _, err := contract.Validate(raw, t); err != nil {
		return nil, err
	}

	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, errInvalidRequestBody
	}

	return &rec, nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidRequestBody
	}
	return id, nil
}

func queryBool(c *gin.Context, name string) *bool {
	v, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func queryInt64(c *gin.Context, name string) *int64 {
	v, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
