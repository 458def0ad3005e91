package domain

import "github.com/facturable/facturable/internal/validation"

// Mode selects the user contract variant.
type Mode string

const (
	// ModeCreate requires the password pair.
	ModeCreate Mode = "create"
	// ModeEdit leaves the password pair optional so accounts can be edited
	// without re-entering credentials.
	ModeEdit Mode = "edit"
)

// Contract builds the user form's rule table for the given mode. An unknown
// mode is contract misuse, not a validation failure.
func Contract(mode Mode) (validation.Contract, error) {
	if mode != ModeCreate && mode != ModeEdit {
		return validation.Contract{}, ErrInvalidMode
	}

	required := mode == ModeCreate

	return validation.Contract{Fields: []validation.Field{
		{
			Name: "name", Attribute: "user.attributes.name",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "email", Attribute: "user.attributes.email",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{
				{Op: validation.OpEmail},
				{Op: validation.OpMaxLen, Param: 255},
			},
		},
		{
			Name: "password", Attribute: "user.attributes.password",
			Kind: validation.KindString, Required: required,
			Nullable: !required, Optional: !required,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
		{
			Name: "password_confirmation", Attribute: "user.attributes.password_confirmation",
			Kind: validation.KindString, Required: required,
			Nullable: !required, Optional: !required,
			Constraints: []validation.Constraint{
				{Op: validation.OpMaxLen, Param: 255},
				{
					Op:             validation.OpConfirmed,
					Other:          "password",
					OtherAttribute: "user.attributes.password",
				},
			},
		},
		{
			Name: "active", Attribute: "user.attributes.active",
			Kind: validation.KindBool, Required: true,
		},
	}}, nil
}

// RoleContract validates the role form.
func RoleContract() validation.Contract {
	return validation.Contract{Fields: []validation.Field{
		{
			Name: "name", Attribute: "role.attributes.name",
			Kind: validation.KindString, Required: true,
			Constraints: []validation.Constraint{{Op: validation.OpMaxLen, Param: 255}},
		},
	}}
}
