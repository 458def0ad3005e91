package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/facturable/facturable/internal/catalog"
	catalogdomain "github.com/facturable/facturable/internal/catalog/domain"
	"github.com/facturable/facturable/internal/invoice/domain"
	"github.com/facturable/facturable/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalogdomain.TaxType{},
		&domain.Serie{},
		&domain.Invoice{},
		&domain.LineItem{},
	)
	require.NoError(t, err)

	require.NoError(t, db.Create(&[]catalogdomain.TaxType{
		{ID: 1, Name: "IVA 21%", Rate: 21},
		{ID: 2, Name: "IVA 10%", Rate: 10},
	}).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Catalog: catalog.NewRepository(db),
	})
	return svc, db
}

func createSerie(t *testing.T, svc domain.Service) *domain.Serie {
	t.Helper()

	serie, err := svc.CreateSerie(context.Background(), &domain.SerieRecord{
		Name:  ptr("General 2026"),
		Year:  ptr(2026),
		Serie: ptr("A"),
	})
	require.NoError(t, err)
	return serie
}

func lineItemRecord(price float64, discount int, taxTypeID int64) *domain.LineItemRecord {
	rec := &domain.LineItemRecord{
		Description:        ptr("Hosting anual"),
		Price:              ptr(price),
		DiscountPercentage: ptr(discount),
	}
	if taxTypeID > 0 {
		rec.TaxTypeID = &normalize.Ref{ID: taxTypeID}
	}
	return rec
}

func TestCreate_AssignsNumberAndRecomputesTotals(t *testing.T) {
	svc, _ := setup(t)
	serie := createSerie(t, svc)

	inv, err := svc.Create(context.Background(), &domain.InvoiceRecord{
		SerieID:    &serie.ID,
		EntityName: ptr("Acme SL"),
		Items: []*domain.LineItemRecord{
			lineItemRecord(100, 10, 1),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, inv.Number)
	assert.Equal(t, "A2026/000001", inv.FullNumber)
	require.Len(t, inv.Items, 1)

	// 100 -> 90 after 10% discount -> 108.90 with 21% tax
	assert.Equal(t, 108.90, inv.Items[0].Total)
	assert.Equal(t, 100.0, inv.TotalPrice)
	assert.Equal(t, 108.90, inv.TotalAmount)
	assert.Equal(t, 18.90, inv.TotalTaxAmount)
}

func TestCreate_NumbersAreSequentialPerSerie(t *testing.T) {
	svc, _ := setup(t)
	serie := createSerie(t, svc)

	for want := 1; want <= 3; want++ {
		inv, err := svc.Create(context.Background(), &domain.InvoiceRecord{
			SerieID: &serie.ID,
			Items:   []*domain.LineItemRecord{lineItemRecord(10, 0, 0)},
		})
		require.NoError(t, err)
		assert.Equal(t, want, inv.Number)
	}
}

func TestCreate_UnknownSerieRejected(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Create(context.Background(), &domain.InvoiceRecord{
		SerieID: ptr[int64](999),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSerie)
}

func TestGet_PreloadsItems(t *testing.T) {
	svc, _ := setup(t)
	serie := createSerie(t, svc)

	created, err := svc.Create(context.Background(), &domain.InvoiceRecord{
		SerieID: &serie.ID,
		Items: []*domain.LineItemRecord{
			lineItemRecord(10, 0, 1),
			lineItemRecord(20, 0, 2),
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRectify_StampsItemsWithoutDeleting(t *testing.T) {
	svc, db := setup(t)
	serie := createSerie(t, svc)

	created, err := svc.Create(context.Background(), &domain.InvoiceRecord{
		SerieID: &serie.ID,
		Items: []*domain.LineItemRecord{
			lineItemRecord(10, 0, 1),
			lineItemRecord(20, 0, 1),
		},
	})
	require.NoError(t, err)

	rectified, err := svc.Rectify(context.Background(), domain.RectifyRequest{
		InvoiceID: created.ID,
		Complete:  true,
	})
	require.NoError(t, err)

	for _, item := range rectified.Items {
		assert.NotNil(t, item.RectificatedAt)
	}

	var count int64
	require.NoError(t, db.Model(&domain.LineItem{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// a second complete rectification finds nothing left to void
	_, err = svc.Rectify(context.Background(), domain.RectifyRequest{
		InvoiceID: created.ID,
		Complete:  true,
	})
	assert.ErrorIs(t, err, domain.ErrNoItemsToRectify)
}

func TestRecalculateItem_FromTotal(t *testing.T) {
	svc, _ := setup(t)

	item, err := svc.RecalculateItem(context.Background(), &domain.LineItemRecord{
		Total:     ptr(108.90),
		TaxTypeID: &normalize.Ref{ID: 1},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 90.0, item.Price)
}

func TestUpdate_ReplacesItemsAndKeepsNumber(t *testing.T) {
	svc, db := setup(t)
	serie := createSerie(t, svc)

	created, err := svc.Create(context.Background(), &domain.InvoiceRecord{
		SerieID: &serie.ID,
		Items:   []*domain.LineItemRecord{lineItemRecord(10, 0, 1)},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &domain.InvoiceRecord{
		SerieID: &serie.ID,
		Items: []*domain.LineItemRecord{
			lineItemRecord(50, 0, 1),
			lineItemRecord(25, 0, 1),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, created.Number, updated.Number)
	assert.Equal(t, created.FullNumber, updated.FullNumber)
	assert.Len(t, updated.Items, 2)

	var count int64
	require.NoError(t, db.Model(&domain.LineItem{}).Where("invoice_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
