// Package i18n resolves message keys into localized, placeholder-interpolated
// strings. Catalogs are flat key/value maps; placeholders use the :name form.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/fx"
)

// Translator resolves a message key with optional named placeholder values.
type Translator func(key string, args map[string]any) string

// Catalog is a locale-bound message table.
type Catalog struct {
	locale   string
	messages map[string]string
}

// Module provides the default catalog translator.
var Module = fx.Provide(func() Translator {
	return NewCatalog("es", MessagesES).Translate
})

func NewCatalog(locale string, messages map[string]string) *Catalog {
	return &Catalog{locale: locale, messages: messages}
}

func (c *Catalog) Locale() string { return c.locale }

// Translate resolves key and replaces :name placeholders with args values.
// Unknown keys fall back to the key itself so missing entries stay visible.
func (c *Catalog) Translate(key string, args map[string]any) string {
	message, ok := c.messages[key]
	if !ok {
		message = key
	}
	if len(args) == 0 {
		return message
	}

	// Longer names first so :attribute is not clipped by a shorter :attr arg.
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	for _, name := range names {
		message = strings.ReplaceAll(message, ":"+name, formatArg(args[name]))
	}
	return message
}

func formatArg(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%g", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
