package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("invoice_not_found")
	ErrSerieNotFound     = errors.New("invoice_serie_not_found")
	ErrItemNotFound      = errors.New("invoice_item_not_found")
	ErrInvalidID         = errors.New("invalid_invoice_id")
	ErrAlreadyRectified  = errors.New("invoice_already_rectified")
	ErrNoItemsToRectify  = errors.New("invoice_no_items_to_rectify")
	ErrInvalidSerie      = errors.New("invalid_invoice_serie")
	ErrInvalidInvoiceRef = errors.New("invalid_invoice_reference")
)

type ListRequest struct {
	EntityID    *int64
	SerieID     *int64
	LAFStatusID *int64
}

// RectifyRequest voids line items of an invoice. Complete rectification
// covers every item; partial rectification names the items.
type RectifyRequest struct {
	InvoiceID int64
	Complete  bool
	ItemIDs   []int64
}

type Service interface {
	Create(ctx context.Context, rec *InvoiceRecord) (*Invoice, error)
	Update(ctx context.Context, id int64, rec *InvoiceRecord) (*Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	List(ctx context.Context, req ListRequest) ([]*Invoice, error)
	Rectify(ctx context.Context, req RectifyRequest) (*Invoice, error)

	CreateSerie(ctx context.Context, rec *SerieRecord) (*Serie, error)
	UpdateSerie(ctx context.Context, id int64, rec *SerieRecord) (*Serie, error)
	ListSeries(ctx context.Context) ([]*Serie, error)

	// RecalculateItem recomputes the dependent side of a line item. When
	// fromTotal is set the entered total drives the price; otherwise the
	// entered price drives the total.
	RecalculateItem(ctx context.Context, rec *LineItemRecord, fromTotal bool) (*LineItem, error)
}
