package domain

import "github.com/facturable/facturable/internal/validation"

// Contract validates the invoice header form. Date fields come back in the
// payload format on acceptance.
func Contract() validation.Contract {
	optionalText := func(name, attribute string) validation.Field {
		return validation.Field{
			Name: name, Attribute: attribute,
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		}
	}

	return validation.Contract{Fields: []validation.Field{
		{
			Name: "entity_id", Attribute: "invoice.attributes.entity_id",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		optionalText("entity_name", "invoice.attributes.entity_name"),
		optionalText("entity_crn", "invoice.attributes.entity_crn"),
		optionalText("entity_address", "invoice.attributes.entity_address"),
		optionalText("entity_population", "invoice.attributes.entity_population"),
		optionalText("entity_province", "invoice.attributes.entity_province"),
		{
			Name: "entity_postal_code", Attribute: "invoice.attributes.entity_postal_code",
			Kind: validation.KindString, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{
				{Op: validation.OpMaxLen, Param: 255},
				{Op: validation.OpPattern, Pattern: `^\d*`, MessageKey: "validation.numeric"},
			},
		},
		{
			Name: "notes", Attribute: "invoice.attributes.notes",
			Kind: validation.KindString, Nullable: true, Optional: true,
		},
		{
			Name: "date", Attribute: "invoice.attributes.date",
			Kind: validation.KindDate, Nullable: true, Optional: true,
			Transform: validation.TransformDate,
		},
		{
			Name: "payment_methods_id", Attribute: "invoice.attributes.number",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "sended_at", Attribute: "invoice.attributes.sended_at",
			Kind: validation.KindDate, Nullable: true, Optional: true,
			Transform: validation.TransformDate,
		},
		{
			Name: "paid_at", Attribute: "invoice.attributes.paid_at",
			Kind: validation.KindDate, Nullable: true, Optional: true,
			Transform: validation.TransformDate,
		},
	}}
}

// SerieContract validates the invoice serie form. The serie mnemonic has a
// tighter 20-character ceiling than the universal 255 default.
func SerieContract() validation.Contract {
	return validation.Contract{Fields: []validation.Field{
		{
			Name: "name", Attribute: "invoiceserie.attributes.name",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "year", Attribute: "invoiceserie.attributes.year",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "issuer_id", Attribute: "invoiceserie.attributes.issuer_id",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "invoice_type_id", Attribute: "invoiceserie.attributes.invoice_type_id",
			Kind: validation.KindInt, Nullable: true,
		},
		{
			Name: "is_active", Attribute: "invoiceserie.attributes.is_active",
			Kind: validation.KindBool, Required: true,
		},
		{
			Name: "serie", Attribute: "invoiceserie.attributes.serie",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 20}},
		},
	}}
}

// LineItemContract validates one line-item row.
func LineItemContract() validation.Contract {
	return validation.Contract{Fields: []validation.Field{
		{
			Name: "service_type_id", Attribute: "invoice_item.attributes.service_type_id",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
		{
			Name: "description", Attribute: "invoice_item.attributes.description",
			Kind: validation.KindString, Nullable: true,
		},
		{
			Name: "price", Attribute: "invoice_item.attributes.price",
			Kind: validation.KindFloat, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpNonNegative}},
		},
		{
			Name: "discount_percentage", Attribute: "invoice_item.attributes.discount_percentage",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{
				{Op: validation.OpNonNegative, MessageKey: "validation.required"},
				{Op: validation.OpMax, Param: 100},
			},
		},
		{
			Name: "surcharge_percentage", Attribute: "invoice_item.attributes.surcharge_percentage",
			Kind: validation.KindInt, Nullable: true, Optional: true,
			Constraints: []validation.Constraint{{Op: validation.OpNonNegative}},
		},
		{
			Name: "tax_type_id", Attribute: "invoice_item.attributes.tax_type_id",
			Kind: validation.KindInt, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpPositive, MessageKey: "validation.required"}},
		},
	}}
}
