// Package domain holds the entity (customer) model and its canonical form.
package domain

import (
	"time"

	"github.com/facturable/facturable/internal/normalize"
)

// Entity is a billed customer.
type Entity struct {
	ID                   int64    `gorm:"primaryKey" json:"id"`
	Name                 string   `gorm:"type:text;not null" json:"name"`
	CRN                  string   `gorm:"column:crn;type:text;not null" json:"crn"`
	Alias                string   `gorm:"type:text" json:"alias"`
	Address              string   `gorm:"type:text" json:"address"`
	Population           string   `gorm:"type:text" json:"population"`
	Province             string   `gorm:"type:text" json:"province"`
	PostalCode           string   `gorm:"type:text" json:"postal_code"`
	Phone                string   `gorm:"type:text" json:"phone"`
	Emails               string   `gorm:"type:text" json:"emails"`
	EmailsSendingInvoice []string `gorm:"serializer:json" json:"emails_sending_invoice"`
	Website              string   `gorm:"type:text" json:"website"`
	PaymentMethodID      *int64   `gorm:"index" json:"payment_method_id"`
	PaymentDueDays       int      `gorm:"not null;default:0" json:"payment_due_days"`
	TaxExempt            bool     `gorm:"not null;default:false" json:"tax_exempt"`
	BankAccountNumber    string   `gorm:"type:text" json:"bank_account_number"`
	Notes                string   `gorm:"type:text" json:"notes"`
	Active               bool     `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Entity) TableName() string { return "entities" }

// Record is the externally-sourced shape: every field optional, arrays
// tolerant of non-array values.
type Record struct {
	ID                   *int64               `json:"id"`
	Name                 *string              `json:"name"`
	CRN                  *string              `json:"crn"`
	Alias                *string              `json:"alias"`
	Address              *string              `json:"address"`
	Population           *string              `json:"population"`
	Province             *string              `json:"province"`
	PostalCode           *string              `json:"postal_code"`
	Phone                *string              `json:"phone"`
	Emails               *string              `json:"emails"`
	EmailsSendingInvoice normalize.StringList `json:"emails_sending_invoice"`
	Website              *string              `json:"website"`
	PaymentMethodID      *int64               `json:"payment_method_id"`
	PaymentDueDays       *int                 `json:"payment_due_days"`
	TaxExempt            *bool                `json:"tax_exempt"`
	BankAccountNumber    *string              `json:"bank_account_number"`
	Notes                *string              `json:"notes"`
	Active               *bool                `json:"active"`
}

// Default is the static default entity.
func Default() Entity {
	return Entity{
		EmailsSendingInvoice: []string{},
		Active:               true,
	}
}

// FromRecord normalizes an external record into the canonical entity. A nil
// record yields the static default unchanged.
func FromRecord(rec *Record) Entity {
	if rec == nil {
		return Default()
	}

	return Entity{
		ID:                   normalize.Or(rec.ID, 0),
		Name:                 normalize.Or(rec.Name, ""),
		CRN:                  normalize.Or(rec.CRN, ""),
		Alias:                normalize.Or(rec.Alias, ""),
		Address:              normalize.Or(rec.Address, ""),
		Population:           normalize.Or(rec.Population, ""),
		Province:             normalize.Or(rec.Province, ""),
		PostalCode:           normalize.Or(rec.PostalCode, ""),
		Phone:                normalize.Or(rec.Phone, ""),
		Emails:               normalize.Or(rec.Emails, ""),
		EmailsSendingInvoice: normalize.Slice([]string(rec.EmailsSendingInvoice)),
		Website:              normalize.Or(rec.Website, ""),
		PaymentMethodID:      rec.PaymentMethodID,
		PaymentDueDays:       normalize.Or(rec.PaymentDueDays, 0),
		TaxExempt:            normalize.Or(rec.TaxExempt, false),
		BankAccountNumber:    normalize.Or(rec.BankAccountNumber, ""),
		Notes:                normalize.Or(rec.Notes, ""),
		Active:               normalize.Or(rec.Active, true),
	}
}
