package domain

import (
	"context"
	"errors"

	"github.com/facturable/facturable/pkg/db/pagination"
)

var (
	ErrNotFound  = errors.New("entity_not_found")
	ErrInvalidID = errors.New("invalid_entity_id")
)

type ListRequest struct {
	pagination.Pagination
	Name   string
	CRN    string
	Active *bool
}

type ListResponse struct {
	Entities []*Entity            `json:"entities"`
	PageInfo *pagination.PageInfo `json:"page_info"`
}

type Service interface {
	Create(ctx context.Context, rec *Record) (*Entity, error)
	Update(ctx context.Context, id int64, rec *Record) (*Entity, error)
	Get(ctx context.Context, id int64) (*Entity, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Delete(ctx context.Context, id int64) error
}
