package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/facturable/facturable/internal/catalog/domain"
	"github.com/facturable/facturable/internal/invoice/domain"
	"github.com/facturable/facturable/internal/pricing"
	"github.com/facturable/facturable/pkg/db/option"
	"github.com/facturable/facturable/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Catalog catalogdomain.Repository
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	catalog catalogdomain.Repository

	invoiceRepo repository.Repository[domain.Invoice]
	serieRepo   repository.Repository[domain.Serie]
	itemRepo    repository.Repository[domain.LineItem]
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		genID:   p.GenID,
		catalog: p.Catalog,

		invoiceRepo: repository.ProvideStore[domain.Invoice](p.DB),
		serieRepo:   repository.ProvideStore[domain.Serie](p.DB),
		itemRepo:    repository.ProvideStore[domain.LineItem](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, rec *domain.InvoiceRecord) (*domain.Invoice, error) {
	taxTypes, err := s.taxTypes(ctx)
	if err != nil {
		return nil, err
	}

	inv := domain.InvoiceFromRecord(rec)
	inv.ID = s.genID.Generate().Int64()

	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err := s.assignNumber(ctx, &inv); err != nil {
		return nil, err
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		item.ID = s.genID.Generate().Int64()
		item.InvoiceID = &inv.ID
		item.Total = pricing.TotalFromPrice(item.PricingItem(), taxTypes)
		item.CreatedAt = now
		item.UpdatedAt = now
	}
	recalcTotals(&inv, taxTypes)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := inv.Items
		inv.Items = nil
		if err := s.invoiceRepo.WithTrx(tx).Create(ctx, &inv); err != nil {
			return err
		}
		inv.Items = items

		refs := make([]*domain.LineItem, 0, len(items))
		for i := range items {
			refs = append(refs, &items[i])
		}
		return s.itemRepo.WithTrx(tx).BatchCreate(ctx, refs)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.Int64("invoice_id", inv.ID),
		zap.String("full_number", inv.FullNumber),
		zap.Int("items", len(inv.Items)),
	)
	return &inv, nil
}

func (s *Service) Update(ctx context.Context, id int64, rec *domain.InvoiceRecord) (*domain.Invoice, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.invoiceRepo.FindOne(ctx, &domain.Invoice{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	taxTypes, err := s.taxTypes(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := domain.InvoiceFromRecord(rec)
	inv.ID = id
	inv.Number = existing.Number
	inv.FullNumber = existing.FullNumber
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = now

	for i := range inv.Items {
		item := &inv.Items[i]
		if item.ID == 0 {
			item.ID = s.genID.Generate().Int64()
			item.CreatedAt = now
		}
		item.InvoiceID = &inv.ID
		item.Total = pricing.TotalFromPrice(item.PricingItem(), taxTypes)
		item.UpdatedAt = now
	}
	recalcTotals(&inv, taxTypes)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&domain.LineItem{}).Error; err != nil {
			return err
		}

		items := inv.Items
		inv.Items = nil
		if err := tx.Save(&inv).Error; err != nil {
			return err
		}
		inv.Items = items

		refs := make([]*domain.LineItem, 0, len(items))
		for i := range items {
			refs = append(refs, &items[i])
		}
		return s.itemRepo.WithTrx(tx).BatchCreate(ctx, refs)
	})
	if err != nil {
		return nil, err
	}

	return &inv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	inv, err := s.invoiceRepo.FindOne(ctx, &domain.Invoice{ID: id}, option.WithPreload("Items"))
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]*domain.Invoice, error) {
	filter := domain.Invoice{
		EntityID:    req.EntityID,
		SerieID:     req.SerieID,
		LAFStatusID: req.LAFStatusID,
	}
	return s.invoiceRepo.Find(ctx, &filter, option.WithOrder("id desc"))
}

// Rectify voids line items by stamping rectificated_at; rows are never
// removed.
func (s *Service) Rectify(ctx context.Context, req domain.RectifyRequest) (*domain.Invoice, error) {
	inv, err := s.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	targets := make(map[int64]bool, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		targets[id] = true
	}

	now := time.Now().UTC()
	touched := 0
	for i := range inv.Items {
		item := &inv.Items[i]
		if item.RectificatedAt != nil {
			continue
		}
		if !req.Complete && !targets[item.ID] {
			continue
		}
		item.RectificatedAt = &now
		item.UpdatedAt = now
		touched++
	}
	if touched == 0 {
		return nil, domain.ErrNoItemsToRectify
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range inv.Items {
			item := inv.Items[i]
			if item.RectificatedAt == nil || !item.UpdatedAt.Equal(now) {
				continue
			}
			err := s.itemRepo.WithTrx(tx).Update(ctx, item.ID, map[string]any{
				"rectificated_at": item.RectificatedAt,
				"updated_at":      item.UpdatedAt,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice rectified",
		zap.Int64("invoice_id", inv.ID),
		zap.Bool("complete", req.Complete),
		zap.Int("items", touched),
	)
	return inv, nil
}

func (s *Service) CreateSerie(ctx context.Context, rec *domain.SerieRecord) (*domain.Serie, error) {
	serie := domain.SerieFromRecord(rec)
	serie.ID = s.genID.Generate().Int64()

	now := time.Now().UTC()
	serie.CreatedAt = now
	serie.UpdatedAt = now

	if err := s.serieRepo.Create(ctx, &serie); err != nil {
		return nil, err
	}
	return &serie, nil
}

func (s *Service) UpdateSerie(ctx context.Context, id int64, rec *domain.SerieRecord) (*domain.Serie, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.serieRepo.FindOne(ctx, &domain.Serie{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrSerieNotFound
	}

	serie := domain.SerieFromRecord(rec)
	serie.ID = id
	serie.CreatedAt = existing.CreatedAt
	serie.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(&serie).Error; err != nil {
		return nil, err
	}
	return &serie, nil
}

func (s *Service) ListSeries(ctx context.Context) ([]*domain.Serie, error) {
	return s.serieRepo.Find(ctx, &domain.Serie{}, option.WithOrder("year desc, name"))
}

func (s *Service) RecalculateItem(ctx context.Context, rec *domain.LineItemRecord, fromTotal bool) (*domain.LineItem, error) {
	taxTypes, err := s.taxTypes(ctx)
	if err != nil {
		return nil, err
	}

	item := domain.LineItemFromRecord(rec)
	if fromTotal {
		item.Price = pricing.PriceFromTotal(item.PricingItem(), taxTypes)
	} else {
		item.Total = pricing.TotalFromPrice(item.PricingItem(), taxTypes)
	}
	return &item, nil
}

func (s *Service) taxTypes(ctx context.Context) ([]pricing.TaxType, error) {
	rows, err := s.catalog.ListTaxTypes(ctx)
	if err != nil {
		return nil, err
	}
	return catalogdomain.PricingTaxTypes(rows), nil
}

// assignNumber gives a serie-bound invoice the next number in its serie.
func (s *Service) assignNumber(ctx context.Context, inv *domain.Invoice) error {
	if inv.SerieID == nil || inv.Number != 0 {
		return nil
	}

	serie, err := s.serieRepo.FindOne(ctx, &domain.Serie{ID: *inv.SerieID})
	if err != nil {
		return err
	}
	if serie == nil {
		return domain.ErrInvalidSerie
	}

	var last struct {
		Number int
	}
	err = s.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("COALESCE(MAX(number), 0) AS number").
		Where("serie_id = ?", serie.ID).
		Scan(&last).Error
	if err != nil {
		return err
	}

	inv.Number = last.Number + 1
	inv.FullNumber = fmt.Sprintf("%s%d/%06d", serie.Serie, serie.Year, inv.Number)
	return nil
}

// recalcTotals refreshes the invoice aggregates from its items. The tax share
// of each item is the billed total minus what it would bill untaxed.
func recalcTotals(inv *domain.Invoice, taxTypes []pricing.TaxType) {
	var totalPrice, totalAmount, totalTax float64
	for _, item := range inv.Items {
		if item.RectificatedAt != nil {
			continue
		}
		untaxed := item.PricingItem()
		untaxed.TaxTypeID = 0

		totalPrice += item.Price
		totalAmount += item.Total
		totalTax += item.Total - pricing.TotalFromPrice(untaxed, taxTypes)
	}

	inv.TotalPrice = round2(totalPrice)
	inv.TotalAmount = round2(totalAmount)
	inv.TotalTaxAmount = round2(totalTax)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
