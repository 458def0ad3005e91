// Package domain holds the key/value application settings exposed to the
// back office.
package domain

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Setting is one configuration row.
type Setting struct {
	Name  string `gorm:"primaryKey;type:text" json:"name"`
	Value string `gorm:"type:text;not null" json:"value"`

	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Setting) TableName() string { return "configurations" }

// Default is the static default configuration: no rows.
func Default() []Setting {
	return []Setting{}
}

// FromRecord normalizes the API's configuration object (a flat key/value map)
// into rows, sorted by name for stable output. Null values become empty
// strings.
func FromRecord(rec map[string]any) []Setting {
	if rec == nil {
		return Default()
	}

	out := make([]Setting, 0, len(rec))
	for name, value := range rec {
		normalized := ""
		if value != nil {
			normalized = fmt.Sprintf("%v", value)
		}
		out = append(out, Setting{Name: name, Value: normalized})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ToRecord serializes rows back into the flat map the API expects.
func ToRecord(settings []Setting) map[string]any {
	out := make(map[string]any, len(settings))
	for _, s := range settings {
		out[s.Name] = s.Value
	}
	return out
}

type Service interface {
	Get(ctx context.Context) (map[string]any, error)
	Replace(ctx context.Context, rec map[string]any) (map[string]any, error)
}
