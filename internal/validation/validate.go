package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/facturable/facturable/internal/i18n"
	"github.com/facturable/facturable/internal/normalize"
)

// Validate evaluates the contract against a raw record. On success it returns
// the accepted record with transforms applied (dates as payload strings,
// email lists split, numerics coerced). Expected failures come back as
// *Errors; a nil translator is misuse and returns ErrNilTranslator.
func (c Contract) Validate(raw map[string]any, t i18n.Translator) (map[string]any, error) {
	if t == nil {
		return nil, ErrNilTranslator
	}

	out := make(map[string]any, len(c.Fields))
	accepted := make(map[string]any, len(c.Fields))
	errs := &Errors{}

	for _, f := range c.Fields {
		value, present := raw[f.Name]
		if !present || value == nil || isEmptyInput(f.Kind, value) {
			if f.Required {
				errs.Add(f.Name, t(requiredKey(f), attrArgs(f, t)))
				continue
			}
			if present {
				out[f.Name] = nil
			}
			continue
		}

		v, ok := coerce(f.Kind, value)
		if !ok {
			errs.Add(f.Name, t(kindKey(f.Kind), attrArgs(f, t)))
			continue
		}

		if f.Required && f.Kind == KindString && v.(string) == "" {
			errs.Add(f.Name, t(requiredKey(f), attrArgs(f, t)))
			continue
		}

		if msg := c.check(f, v, t); msg != "" {
			errs.Add(f.Name, msg)
			continue
		}

		accepted[f.Name] = v
		out[f.Name] = applyTransform(f.Transform, v)
	}

	// Cross-field rules run once the per-field pass is clean for the fields
	// involved, mirroring schema-level refinements.
	for _, f := range c.Fields {
		if errs.Has(f.Name) {
			continue
		}
		for _, con := range f.Constraints {
			if con.Op != OpConfirmed && con.Op != OpAfterOrEqual {
				continue
			}
			if msg := crossCheck(f, con, accepted, t); msg != "" {
				errs.Add(f.Name, msg)
				delete(out, f.Name)
				break
			}
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return out, nil
}

func (c Contract) check(f Field, v any, t i18n.Translator) string {
	for _, con := range f.Constraints {
		switch con.Op {
		case OpMaxLen:
			if len([]rune(v.(string))) > int(con.Param) {
				return t(messageKey(con, "validation.max.string"), withArg(attrArgs(f, t), "max", con.Param))
			}
		case OpMax:
			if asFloat(v) > con.Param {
				return t(messageKey(con, "validation.max.numeric"), withArg(attrArgs(f, t), "max", con.Param))
			}
		case OpMin:
			if asFloat(v) < con.Param {
				return t(messageKey(con, "validation.min.numeric"), withArg(attrArgs(f, t), "min", con.Param))
			}
		case OpPositive:
			if asFloat(v) <= 0 {
				return t(messageKey(con, "validation.gt.numeric"), withArg(attrArgs(f, t), "value", 0.0))
			}
		case OpNonNegative:
			if asFloat(v) < 0 {
				return t(messageKey(con, "validation.min.numeric"), withArg(attrArgs(f, t), "min", 0.0))
			}
		case OpEmail:
			if !IsEmail(v.(string)) {
				return t(messageKey(con, "validation.email"), attrArgs(f, t))
			}
		case OpPattern:
			if !matchPattern(con.Pattern, v.(string)) {
				return t(messageKey(con, "validation.regex"), attrArgs(f, t))
			}
		case OpEmailList:
			if msg := checkEmailList(f, con, v.(string), t); msg != "" {
				return msg
			}
		}
	}
	return ""
}

func checkEmailList(f Field, con Constraint, value string, t i18n.Translator) string {
	entries := normalize.SplitEmails(value)
	for _, entry := range entries {
		if !IsEmail(entry) {
			return t(messageKey(con, "validation.regex"), attrArgs(f, t))
		}
	}
	// Duplicate detection is an exact match on the trimmed entry; differing
	// case counts as distinct.
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry]; dup {
			return t("validation.distinct", attrArgs(f, t))
		}
		seen[entry] = struct{}{}
	}
	return ""
}

func crossCheck(f Field, con Constraint, accepted map[string]any, t i18n.Translator) string {
	switch con.Op {
	case OpConfirmed:
		own, _ := accepted[f.Name].(string)
		other, _ := accepted[con.Other].(string)
		if own != other {
			// The message names the confirmed sibling; the error still
			// attaches to the confirmation field.
			args := attrArgs(f, t)
			if con.OtherAttribute != "" {
				args["attribute"] = t(con.OtherAttribute, nil)
			}
			return t(messageKey(con, "validation.confirmed"), args)
		}
	case OpAfterOrEqual:
		own, okOwn := accepted[f.Name].(time.Time)
		other, okOther := accepted[con.Other].(time.Time)
		if okOwn && okOther && own.Before(other) {
			args := attrArgs(f, t)
			args["date"] = t(con.OtherAttribute, nil)
			return t(messageKey(con, "validation.after_or_equal"), args)
		}
	}
	return ""
}

func coerce(kind Kind, value any) (any, bool) {
	switch kind {
	case KindString:
		s, ok := value.(string)
		return s, ok
	case KindBool:
		b, ok := value.(bool)
		return b, ok
	case KindFloat:
		switch v := value.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			return parsed, err == nil
		}
		return nil, false
	case KindInt:
		switch v := value.(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case string:
			parsed, ok := parseLeadingInt(strings.TrimSpace(v))
			return parsed, ok
		}
		return nil, false
	case KindDate:
		switch v := value.(type) {
		case time.Time:
			return v, true
		case string:
			parsed := normalize.ParseTime(v)
			if parsed == nil {
				return nil, false
			}
			return *parsed, true
		}
		return nil, false
	}
	return nil, false
}

// parseLeadingInt reads an optionally signed leading digit run, the way
// parseInt-style form inputs are interpreted.
func parseLeadingInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	parsed, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func applyTransform(tr Transform, v any) any {
	switch tr {
	case TransformDate:
		if d, ok := v.(time.Time); ok {
			return normalize.FormatDate(d)
		}
	case TransformDateTime:
		if d, ok := v.(time.Time); ok {
			return normalize.FormatDateTime(d)
		}
	case TransformEmailList:
		if s, ok := v.(string); ok {
			return normalize.SplitEmails(s)
		}
	}
	return v
}

// isEmptyInput treats empty numeric/date strings as absent, matching the form
// preprocessing the payloads originate from.
func isEmptyInput(kind Kind, value any) bool {
	if kind == KindString {
		return false
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

func asFloat(v any) float64 {
	switch value := v.(type) {
	case int:
		return float64(value)
	case float64:
		return value
	}
	return 0
}

func requiredKey(f Field) string {
	if f.RequiredMessageKey != "" {
		return f.RequiredMessageKey
	}
	return "validation.required"
}

func kindKey(kind Kind) string {
	switch kind {
	case KindString:
		return "validation.string"
	case KindBool:
		return "validation.boolean"
	case KindDate:
		return "validation.date"
	default:
		return "validation.numeric"
	}
}

func messageKey(con Constraint, def string) string {
	if con.MessageKey != "" {
		return con.MessageKey
	}
	return def
}

func attrArgs(f Field, t i18n.Translator) map[string]any {
	return map[string]any{"attribute": t(f.Attribute, nil)}
}

func withArg(args map[string]any, name string, value float64) map[string]any {
	args[name] = value
	return args
}
