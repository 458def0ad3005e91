package catalog

import (
	"context"

	"github.com/facturable/facturable/internal/catalog/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListTaxTypes(ctx context.Context) ([]domain.TaxType, error) {
	var rows []domain.TaxType
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	var rows []domain.ServiceType
	err := r.db.WithContext(ctx).Order("name").Find(&rows).Error
	return rows, err
}

func (r *repository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var rows []domain.PaymentMethod
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) ListLAFStatuses(ctx context.Context) ([]domain.LAFStatus, error) {
	var rows []domain.LAFStatus
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) ListBillingCycles(ctx context.Context) ([]domain.BillingCycle, error) {
	var rows []domain.BillingCycle
	err := r.db.WithContext(ctx).Order("months").Find(&rows).Error
	return rows, err
}
