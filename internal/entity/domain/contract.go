package domain

import "github.com/facturable/facturable/internal/validation"

// Contract is the entity form's rule table. The invoice-sending address list
// arrives as one comma-separated string and is split on acceptance.
func Contract() validation.Contract {
	return validation.Contract{Fields: []validation.Field{
		{
			Name: "name", Attribute: "entity.attributes.name",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "crn", Attribute: "entity.attributes.crn",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "alias", Attribute: "entity.attributes.alias",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "address", Attribute: "entity.attributes.address",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "population", Attribute: "entity.attributes.population",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "province", Attribute: "entity.attributes.province",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			// The postal code check is a leading-digits pattern, not a full
			// numeric rule.
			Name: "postal_code", Attribute: "entity.attributes.postal_code",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{
				{Op: validation.OpMaxLen, Param: 255},
				{Op: validation.OpPattern, Pattern: `^\d*`, MessageKey: "validation.numeric"},
			},
		},
		{
			Name: "phone", Attribute: "entity.attributes.phone",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "emails", Attribute: "entity.attributes.emails",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{
				{Op: validation.OpEmail},
				{Op: validation.OpMaxLen, Param: 255},
			},
		},
		{
			Name: "emails_sending_invoice", Attribute: "entity.attributes.emails_sending_invoice",
			Kind: validation.KindString, Required: true,
			Transform:   validation.TransformEmailList,
			Constraints: []validation.Constraint{{Op: validation.OpEmailList}},
		},
		{
			Name: "website", Attribute: "entity.attributes.website",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "payment_method_id", Attribute: "entity.attributes.payment_method",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive}},
		},
		{
			Name: "payment_due_days", Attribute: "entity.attributes.payment_due_days",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpNonNegative}},
		},
		{
			Name: "tax_exempt", Attribute: "entity.attributes.tax_exempt",
			Kind: validation.KindBool, Required: true,
		},
		{
			Name: "bank_account_number", Attribute: "entity.attributes.bank_account_number",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "notes", Attribute: "entity.attributes.notes",
			Kind: validation.KindString, Nullable: true, Optional: true,
		},
		{
			Name: "active", Attribute: "entity.attributes.active",
			Kind: validation.KindBool, Required: true,
		},
	}}
}
