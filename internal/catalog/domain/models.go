// Package domain contains the reference tables the back office reads but
// never edits through forms: tax rates, service types, payment methods,
// invoice LAF statuses and billing cycles.
package domain

import (
	"context"

	"github.com/facturable/facturable/internal/pricing"
)

// TaxType is a tax-rate table row. Rate is a percentage (21 = 21%).
type TaxType struct {
	ID   int64   `gorm:"primaryKey" json:"id"`
	Name string  `gorm:"type:text;not null" json:"name"`
	Rate float64 `gorm:"not null" json:"rate"`
}

func (TaxType) TableName() string { return "tax_types" }

type ServiceType struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`
}

func (ServiceType) TableName() string { return "service_types" }

type PaymentMethod struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

// LAFStatus tracks an invoice's position in the tax-agency submission flow.
type LAFStatus struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`
	Code string `gorm:"type:text;not null" json:"code"`
}

func (LAFStatus) TableName() string { return "laf_statuses" }

type BillingCycle struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:text;not null" json:"name"`
	Months int    `gorm:"not null" json:"months"`
}

func (BillingCycle) TableName() string { return "billing_cycles" }

// Repository reads the reference tables.
type Repository interface {
	ListTaxTypes(ctx context.Context) ([]TaxType, error)
	ListServiceTypes(ctx context.Context) ([]ServiceType, error)
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	ListLAFStatuses(ctx context.Context) ([]LAFStatus, error)
	ListBillingCycles(ctx context.Context) ([]BillingCycle, error)
}

// PricingTaxTypes converts the table rows into the pricing engine's shape.
func PricingTaxTypes(rows []TaxType) []pricing.TaxType {
	out := make([]pricing.TaxType, 0, len(rows))
	for _, row := range rows {
		out = append(out, pricing.TaxType{ID: row.ID, Rate: row.Rate})
	}
	return out
}
