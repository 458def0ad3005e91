// Package validation evaluates declarative rule tables against raw records.
// A Contract lists fields, value kinds and constraints as plain data; Validate
// walks the table, coerces values, applies constraints in order and builds
// messages through the caller's translator. Rule definition and message
// formatting stay separate concerns.
package validation

// Kind is the expected value kind of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
)

// Op identifies a constraint.
type Op int

const (
	// OpMaxLen caps string length at Param characters.
	OpMaxLen Op = iota
	// OpMax caps a numeric value at Param.
	OpMax
	// OpMin floors a numeric value at Param.
	OpMin
	// OpPositive requires a numeric value > 0.
	OpPositive
	// OpNonNegative requires a numeric value >= 0.
	OpNonNegative
	// OpEmail requires a syntactically valid email address.
	OpEmail
	// OpPattern requires the string to match Pattern (unanchored leading
	// match, the way the postal-code check works).
	OpPattern
	// OpEmailList requires a comma-separated list where every trimmed entry
	// is an email and all entries are pairwise distinct (case-sensitive).
	OpEmailList
	// OpConfirmed requires equality with sibling field Other. The error
	// attaches to the field carrying the constraint.
	OpConfirmed
	// OpAfterOrEqual requires this date to be on or after sibling Other,
	// when both are present.
	OpAfterOrEqual
)

// Constraint is one rule row. MessageKey overrides the default message for
// the op; OtherAttribute names the sibling for messages that mention it.
type Constraint struct {
	Op             Op
	Param          float64
	Pattern        string
	Other          string
	OtherAttribute string
	MessageKey     string
}

// Transform adjusts the accepted value before it lands in the output record.
type Transform int

const (
	TransformNone Transform = iota
	// TransformDate renders an accepted date as YYYY-MM-DD.
	TransformDate
	// TransformDateTime renders an accepted date as YYYY-MM-DD HH:MM:SS.
	TransformDateTime
	// TransformEmailList splits the accepted string into trimmed entries.
	TransformEmailList
)

// Field describes one record field.
type Field struct {
	// Name is the record key errors attach to.
	Name string
	// Attribute is the i18n key for the human-readable field name.
	Attribute string

	Kind      Kind
	Required  bool
	Nullable  bool
	Optional  bool
	Transform Transform

	// RequiredMessageKey overrides validation.required for this field.
	RequiredMessageKey string

	Constraints []Constraint
}

// Contract is a declarative validation table for one record shape.
type Contract struct {
	Fields []Field
}
