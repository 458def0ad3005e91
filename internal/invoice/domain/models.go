// Package domain contains the invoice, invoice serie and line-item models and
// their canonical forms.
package domain

import (
	"encoding/json"
	"time"

	"github.com/facturable/facturable/internal/normalize"
	"github.com/facturable/facturable/internal/pricing"
)

// Invoice is an issued or draft invoice. Issuer and entity address fields are
// frozen copies taken at issue time so later edits to the entity do not
// rewrite history.
type Invoice struct {
	ID                    int64      `gorm:"primaryKey" json:"id"`
	LAFStatusID           *int64     `gorm:"column:laf_status_id;index" json:"laf_status_id"`
	EntityID              *int64     `gorm:"index" json:"entity_id"`
	SerieID               *int64     `gorm:"index" json:"serie_id"`
	Number                int        `gorm:"not null;default:0" json:"number"`
	FullNumber            string     `gorm:"type:text" json:"full_number"`
	Date                  *time.Time `json:"date"`
	PaymentMethodsID      *int64     `gorm:"column:payment_methods_id" json:"payment_methods_id"`
	EntityName            string     `gorm:"type:text" json:"entity_name"`
	EntityCRN             string     `gorm:"column:entity_crn;type:text" json:"entity_crn"`
	EntityAddress         string     `gorm:"type:text" json:"entity_address"`
	EntityPopulation      string     `gorm:"type:text" json:"entity_population"`
	EntityProvince        string     `gorm:"type:text" json:"entity_province"`
	EntityPostalCode      string     `gorm:"type:text" json:"entity_postal_code"`
	IssuerName            string     `gorm:"type:text" json:"issuer_name"`
	IssuerCRN             string     `gorm:"column:issuer_crn;type:text" json:"issuer_crn"`
	IssuerAddress         string     `gorm:"type:text" json:"issuer_address"`
	IssuerPopulation      string     `gorm:"type:text" json:"issuer_population"`
	IssuerProvince        string     `gorm:"type:text" json:"issuer_province"`
	IssuerPostalCode      string     `gorm:"type:text" json:"issuer_postal_code"`
	Notes                 string     `gorm:"type:text" json:"notes"`
	SendedAt              *time.Time `json:"sended_at"`
	PaidAt                *time.Time `json:"paid_at"`
	RectificatedInvoiceID int64      `gorm:"not null;default:0" json:"rectificated_invoice_id"`

	TotalPrice     float64 `gorm:"not null;default:0" json:"total_price"`
	TotalAmount    float64 `gorm:"not null;default:0" json:"total_amount"`
	TotalTaxAmount float64 `gorm:"not null;default:0" json:"total_tax_amount"`

	Items []LineItem `gorm:"foreignKey:InvoiceID" json:"invoice_items,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

// Serie numbers invoices per issuer and year.
type Serie struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:text;not null" json:"name"`
	Year          int    `gorm:"not null;default:0" json:"year"`
	IssuerID      int64  `gorm:"not null;default:0" json:"issuer_id"`
	InvoiceTypeID int64  `gorm:"not null;default:0" json:"invoice_type_id"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`
	Serie         string `gorm:"type:text;not null" json:"serie"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Serie) TableName() string { return "invoice_series" }

// LineItem is one billable row on an invoice. Price is the pre-adjustment
// unit amount; Total is the billed amount after discount, surcharge and tax.
// The two are kept consistent by recomputation, never edited independently.
type LineItem struct {
	ID                   int64      `gorm:"primaryKey" json:"id"`
	InvoiceID            *int64     `gorm:"index" json:"invoice_id"`
	EntitySubscriptionID *int64     `gorm:"index" json:"entity_subscription_id"`
	ServiceTypeID        int64      `gorm:"not null;default:0" json:"service_type_id"`
	Description          string     `gorm:"type:text" json:"description"`
	Price                float64    `gorm:"not null;default:0" json:"price"`
	DiscountPercentage   int        `gorm:"not null;default:0" json:"discount_percentage"`
	SurchargePercentage  int        `gorm:"not null;default:0" json:"surcharge_percentage"`
	TaxTypeID            int64      `gorm:"not null;default:0" json:"tax_type_id"`
	Total                float64    `gorm:"not null;default:0" json:"total"`
	RectificatedAt       *time.Time `json:"rectificated_at"`

	// Nested reference objects preserved from the source record for display.
	ServiceType json.RawMessage `gorm:"-" json:"service_type,omitempty"`
	TaxType     json.RawMessage `gorm:"-" json:"tax_type,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (LineItem) TableName() string { return "invoice_items" }

// PricingItem projects the line item onto the pricing engine's input shape.
func (it LineItem) PricingItem() pricing.Item {
	return pricing.Item{
		Price:               it.Price,
		Total:               it.Total,
		DiscountPercentage:  it.DiscountPercentage,
		SurchargePercentage: it.SurchargePercentage,
		TaxTypeID:           it.TaxTypeID,
	}
}

// InvoiceRecord is the externally-sourced invoice shape.
type InvoiceRecord struct {
	ID                    *int64            `json:"id"`
	LAFStatusID           *int64            `json:"laf_status_id"`
	EntityID              *int64            `json:"entity_id"`
	SerieID               *int64            `json:"serie_id"`
	Number                *int              `json:"number"`
	FullNumber            *string           `json:"full_number"`
	Date                  *string           `json:"date"`
	PaymentMethodsID      *int64            `json:"payment_methods_id"`
	EntityName            *string           `json:"entity_name"`
	EntityCRN             *string           `json:"entity_crn"`
	EntityAddress         *string           `json:"entity_address"`
	EntityPopulation      *string           `json:"entity_population"`
	EntityProvince        *string           `json:"entity_province"`
	EntityPostalCode      *string           `json:"entity_postal_code"`
	IssuerName            *string           `json:"issuer_name"`
	IssuerCRN             *string           `json:"issuer_crn"`
	IssuerAddress         *string           `json:"issuer_address"`
	IssuerPopulation      *string           `json:"issuer_population"`
	IssuerProvince        *string           `json:"issuer_province"`
	IssuerPostalCode      *string           `json:"issuer_postal_code"`
	Notes                 *string           `json:"notes"`
	SendedAt              *string           `json:"sended_at"`
	PaidAt                *string           `json:"paid_at"`
	RectificatedInvoiceID *int64            `json:"rectificated_invoice_id"`
	TotalPrice            *float64          `json:"total_price"`
	TotalAmount           *float64          `json:"total_amount"`
	TotalTaxAmount        *float64          `json:"total_tax_amount"`
	Items                 []*LineItemRecord `json:"invoice_items"`
}

// SerieRecord is the externally-sourced serie shape.
type SerieRecord struct {
	ID            *int64  `json:"id"`
	Name          *string `json:"name"`
	Year          *int    `json:"year"`
	IssuerID      *int64  `json:"issuer_id"`
	InvoiceTypeID *int64  `json:"invoice_type_id"`
	IsActive      *bool   `json:"is_active"`
	Serie         *string `json:"serie"`
}

// LineItemRecord is the externally-sourced line-item shape. Foreign keys for
// service type and tax type may arrive as nested {id, ...} objects.
type LineItemRecord struct {
	ID                   *int64         `json:"id"`
	InvoiceID            *int64         `json:"invoice_id"`
	EntitySubscriptionID *int64         `json:"entity_subscription_id"`
	ServiceTypeID        *normalize.Ref `json:"service_type_id"`
	Description          *string        `json:"description"`
	Price                *float64       `json:"price"`
	DiscountPercentage   *int           `json:"discount_percentage"`
	SurchargePercentage  *int           `json:"surcharge_percentage"`
	TaxTypeID            *normalize.Ref `json:"tax_type_id"`
	Total                *float64       `json:"total"`
	RectificatedAt       *string        `json:"rectificated_at"`
}

func DefaultInvoice() Invoice {
	return Invoice{}
}

func DefaultSerie() Serie {
	return Serie{IsActive: true}
}

func DefaultLineItem() LineItem {
	return LineItem{Description: ""}
}

func InvoiceFromRecord(rec *InvoiceRecord) Invoice {
	if rec == nil {
		return DefaultInvoice()
	}

	inv := Invoice{
		ID:                    normalize.Or(rec.ID, 0),
		LAFStatusID:           rec.LAFStatusID,
		EntityID:              rec.EntityID,
		SerieID:               rec.SerieID,
		Number:                normalize.Or(rec.Number, 0),
		FullNumber:            normalize.Or(rec.FullNumber, ""),
		Date:                  normalize.Time(rec.Date),
		PaymentMethodsID:      rec.PaymentMethodsID,
		EntityName:            normalize.Or(rec.EntityName, ""),
		EntityCRN:             normalize.Or(rec.EntityCRN, ""),
		EntityAddress:         normalize.Or(rec.EntityAddress, ""),
		EntityPopulation:      normalize.Or(rec.EntityPopulation, ""),
		EntityProvince:        normalize.Or(rec.EntityProvince, ""),
		EntityPostalCode:      normalize.Or(rec.EntityPostalCode, ""),
		IssuerName:            normalize.Or(rec.IssuerName, ""),
		IssuerCRN:             normalize.Or(rec.IssuerCRN, ""),
		IssuerAddress:         normalize.Or(rec.IssuerAddress, ""),
		IssuerPopulation:      normalize.Or(rec.IssuerPopulation, ""),
		IssuerProvince:        normalize.Or(rec.IssuerProvince, ""),
		IssuerPostalCode:      normalize.Or(rec.IssuerPostalCode, ""),
		Notes:                 normalize.Or(rec.Notes, ""),
		SendedAt:              normalize.Time(rec.SendedAt),
		PaidAt:                normalize.Time(rec.PaidAt),
		RectificatedInvoiceID: normalize.Or(rec.RectificatedInvoiceID, 0),
		TotalPrice:            normalize.Or(rec.TotalPrice, 0),
		TotalAmount:           normalize.Or(rec.TotalAmount, 0),
		TotalTaxAmount:        normalize.Or(rec.TotalTaxAmount, 0),
	}

	for _, itemRec := range rec.Items {
		inv.Items = append(inv.Items, LineItemFromRecord(itemRec))
	}

	return inv
}

func SerieFromRecord(rec *SerieRecord) Serie {
	if rec == nil {
		return DefaultSerie()
	}

	return Serie{
		ID:            normalize.Or(rec.ID, 0),
		Name:          normalize.Or(rec.Name, ""),
		Year:          normalize.Or(rec.Year, 0),
		IssuerID:      normalize.Or(rec.IssuerID, 0),
		InvoiceTypeID: normalize.Or(rec.InvoiceTypeID, 0),
		IsActive:      normalize.Or(rec.IsActive, true),
		Serie:         normalize.Or(rec.Serie, ""),
	}
}

func LineItemFromRecord(rec *LineItemRecord) LineItem {
	if rec == nil {
		return DefaultLineItem()
	}

	return LineItem{
		ID:                   normalize.Or(rec.ID, 0),
		InvoiceID:            rec.InvoiceID,
		EntitySubscriptionID: rec.EntitySubscriptionID,
		ServiceTypeID:        normalize.RefID(rec.ServiceTypeID, 0),
		Description:          normalize.Or(rec.Description, ""),
		Price:                normalize.Or(rec.Price, 0),
		DiscountPercentage:   normalize.Or(rec.DiscountPercentage, 0),
		SurchargePercentage:  normalize.Or(rec.SurchargePercentage, 0),
		TaxTypeID:            normalize.RefID(rec.TaxTypeID, 0),
		Total:                normalize.Or(rec.Total, 0),
		RectificatedAt:       normalize.Time(rec.RectificatedAt),
		ServiceType:          normalize.RefObject(rec.ServiceTypeID),
		TaxType:              normalize.RefObject(rec.TaxTypeID),
	}
}
