// Package domain links entities to subscriptions with per-link pricing
// adjustments.
package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/facturable/facturable/internal/normalize"
	"github.com/facturable/facturable/internal/validation"
)

var (
	ErrNotFound  = errors.New("entity_subscription_not_found")
	ErrInvalidID = errors.New("invalid_entity_subscription_id")
)

// EntitySubscription is an entity's contracted subscription, carrying the
// discount, surcharge and tax applied when it is billed.
type EntitySubscription struct {
	ID                      int64      `gorm:"primaryKey" json:"id"`
	EntityID                *int64     `gorm:"index" json:"entity_id"`
	SubscriptionID          *int64     `gorm:"index" json:"subscription_id"`
	DiscountPercentage      int        `gorm:"not null;default:0" json:"discount_percentage"`
	SurchargePercentage     int        `gorm:"not null;default:0" json:"surcharge_percentage"`
	TaxTypeID               int64      `gorm:"not null;default:0" json:"tax_type_id"`
	StartsAt                *time.Time `json:"starts_at"`
	EndsAt                  *time.Time `json:"ends_at"`
	ApplyAssociatedDiscount int        `gorm:"not null;default:0" json:"apply_associated_discount"`

	// TaxType is the nested reference object as the API sent it, kept for
	// display alongside the flattened id.
	TaxType json.RawMessage `gorm:"-" json:"tax_type,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (EntitySubscription) TableName() string { return "entity_subscriptions" }

type Record struct {
	ID                      *int64         `json:"id"`
	EntityID                *int64         `json:"entity_id"`
	SubscriptionID          *int64         `json:"subscription_id"`
	DiscountPercentage      *int           `json:"discount_percentage"`
	SurchargePercentage     *int           `json:"surcharge_percentage"`
	TaxTypeID               *normalize.Ref `json:"tax_type_id"`
	StartsAt                *string        `json:"starts_at"`
	EndsAt                  *string        `json:"ends_at"`
	ApplyAssociatedDiscount *int           `json:"apply_associated_discount"`
}

func Default() EntitySubscription {
	return EntitySubscription{}
}

func FromRecord(rec *Record) EntitySubscription {
	if rec == nil {
		return Default()
	}

	return EntitySubscription{
		ID:                      normalize.Or(rec.ID, 0),
		EntityID:                rec.EntityID,
		SubscriptionID:          rec.SubscriptionID,
		DiscountPercentage:      normalize.Or(rec.DiscountPercentage, 0),
		SurchargePercentage:     normalize.Or(rec.SurchargePercentage, 0),
		TaxTypeID:               normalize.RefID(rec.TaxTypeID, 0),
		TaxType:                 normalize.RefObject(rec.TaxTypeID),
		StartsAt:                normalize.Time(rec.StartsAt),
		EndsAt:                  normalize.Time(rec.EndsAt),
		ApplyAssociatedDiscount: normalize.Or(rec.ApplyAssociatedDiscount, 0),
	}
}

// Contract validates the link form. The end date must be on or after the
// start date when both are present; that failure attaches to ends_at.
func Contract() validation.Contract {
	return validation.Contract{Fields: []validation.Field{
		{
			Name: "entity_id", Attribute: "entity_subscription.attributes.entity",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "subscription_id", Attribute: "entity_subscription.attributes.subscription",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "starts_at", Attribute: "entity_subscription.attributes.starts_at",
			Kind: validation.KindDate, Required: true,
			Transform: validation.TransformDate,
		},
		{
			Name: "ends_at", Attribute: "entity_subscription.attributes.ends_at",
			Kind: validation.KindDate, Nullable: true, Optional: true,
			Transform: validation.TransformDate,
			Constraints: []validation.Constraint{{
				Op:             validation.OpAfterOrEqual,
				Other:          "starts_at",
				OtherAttribute: "entity_subscription.attributes.starts_at",
			}},
		},
		{
			Name: "discount_percentage", Attribute: "entity_subscription.attributes.discount_percentage",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{
				{Op: validation.OpNonNegative, MessageKey: "validation.required"},
				{Op: validation.OpMax, Param: 100},
			},
		},
		{
			Name: "surcharge_percentage", Attribute: "entity_subscription.attributes.surcharge_percentage",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpNonNegative}},
		},
		{
			Name: "tax_type_id", Attribute: "entity_subscription.attributes.tax_type_id",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "apply_associated_discount", Attribute: "entity_subscription.attributes.apply_associated_discount",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpNonNegative}},
		},
	}}
}

type Service interface {
	Create(ctx context.Context, rec *Record) (*EntitySubscription, error)
	Update(ctx context.Context, id int64, rec *Record) (*EntitySubscription, error)
	Get(ctx context.Context, id int64) (*EntitySubscription, error)
	ListByEntity(ctx context.Context, entityID int64) ([]*EntitySubscription, error)
	Delete(ctx context.Context, id int64) error
}
