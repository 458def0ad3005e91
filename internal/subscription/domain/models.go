// Package domain holds the subscription catalog model.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/facturable/facturable/internal/normalize"
	"github.com/facturable/facturable/internal/validation"
)

var (
	ErrNotFound  = errors.New("subscription_not_found")
	ErrInvalidID = errors.New("invalid_subscription_id")
)

// Subscription is a sellable recurring service.
type Subscription struct {
	ID             int64   `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"type:text;not null" json:"name"`
	ServiceTypeID  *int64  `gorm:"index" json:"service_type_id"`
	BillingCycleID *int64  `gorm:"index" json:"billing_cycle_id"`
	Price          float64 `gorm:"not null;default:0" json:"price"`
	Active         bool    `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

type Record struct {
	ID             *int64   `json:"id"`
	Name           *string  `json:"name"`
	ServiceTypeID  *int64   `json:"service_type_id"`
	BillingCycleID *int64   `json:"billing_cycle_id"`
	Price          *float64 `json:"price"`
	Active         *bool    `json:"active"`
}

func Default() Subscription {
	return Subscription{Active: true}
}

func FromRecord(rec *Record) Subscription {
	if rec == nil {
		return Default()
	}

	return Subscription{
		ID:             normalize.Or(rec.ID, 0),
		Name:           normalize.Or(rec.Name, ""),
		ServiceTypeID:  rec.ServiceTypeID,
		BillingCycleID: rec.BillingCycleID,
		Price:          normalize.Or(rec.Price, 0),
		Active:         normalize.Or(rec.Active, true),
	}
}

func Contract() validation.Contract {
	return validation.Contract{Fields: []validation.Field{
		{
			Name: "name", Attribute: "subscription.attributes.name",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "service_type_id", Attribute: "subscription.attributes.service_type",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive}},
		},
		{
			Name: "billing_cycle_id", Attribute: "subscription.attributes.billing_cycle",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive}},
		},
		{
			Name: "price", Attribute: "subscription.attributes.price",
			Kind: validation.KindFloat, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpNonNegative}},
		},
		{
			Name: "active", Attribute: "subscription.attributes.active",
			Kind: validation.KindBool, Optional: true,
		},
	}}
}

type Service interface {
	Create(ctx context.Context, rec *Record) (*Subscription, error)
	Update(ctx context.Context, id int64, rec *Record) (*Subscription, error)
	Get(ctx context.Context, id int64) (*Subscription, error)
	List(ctx context.Context, active *bool) ([]*Subscription, error)
	Delete(ctx context.Context, id int64) error
}
