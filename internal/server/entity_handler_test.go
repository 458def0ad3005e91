package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	entitydomain "github.com/facturable/facturable/internal/entity/domain"
	"github.com/facturable/facturable/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEntityService struct {
	created *entitydomain.Record
}

func (f *fakeEntityService) Create(ctx context.Context, rec *entitydomain.Record) (*entitydomain.Entity, error) {
	f.created = rec
	ent := entitydomain.FromRecord(rec)
	ent.ID = 42
	return &ent, nil
}

func (f *fakeEntityService) Update(ctx context.Context, id int64, rec *entitydomain.Record) (*entitydomain.Entity, error) {
	ent := entitydomain.FromRecord(rec)
	ent.ID = id
	return &ent, nil
}

func (f *fakeEntityService) Get(ctx context.Context, id int64) (*entitydomain.Entity, error) {
	if id != 42 {
		return nil, entitydomain.ErrNotFound
	}
	ent := entitydomain.Default()
	ent.ID = id
	return &ent, nil
}

func (f *fakeEntityService) List(ctx context.Context, req entitydomain.ListRequest) (*entitydomain.ListResponse, error) {
	return &entitydomain.ListResponse{Entities: []*entitydomain.Entity{}}, nil
}

func (f *fakeEntityService) Delete(ctx context.Context, id int64) error { return nil }

func newTestServer(t *testing.T) (*Server, *fakeEntityService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeEntityService{}
	s := &Server{
		engine:    NewEngine(zap.NewNop()),
		translate: i18n.NewCatalog("es", i18n.MessagesES).Translate,
		entitySvc: fake,
	}
	s.engine.GET("/api/v1/entities", s.ListEntities)
	s.engine.POST("/api/v1/entities", s.CreateEntity)
	s.engine.GET("/api/v1/entities/:id", s.GetEntity)
	return s, fake
}

func TestCreateEntity_ValidPayload(t *testing.T) {
	s, fake := newTestServer(t)

	body := `{
		"name": "Acme SL",
		"crn": "B12345678",
		"emails": "billing@acme.com",
		"emails_sending_invoice": "a@acme.com, b@acme.com",
		"tax_exempt": false,
		"active": true
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, fake.created)
	require.NotNil(t, fake.created.Name)
	assert.Equal(t, "Acme SL", *fake.created.Name)
}

func TestCreateEntity_MissingNameIsFieldScoped(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{
		"crn": "B12345678",
		"emails": "billing@acme.com",
		"emails_sending_invoice": "a@acme.com",
		"tax_exempt": false,
		"active": true
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Type   string `json:"type"`
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "name", resp.Error.Errors[0].Field)
	assert.Contains(t, resp.Error.Errors[0].Message, "obligatorio")
}

func TestCreateEntity_MalformedJSON(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEntity_NotFoundMapsTo404(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entities/7", nil)
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEntity_BadID(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entities/abc", nil)
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
