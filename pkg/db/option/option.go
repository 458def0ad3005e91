package option

import "gorm.io/gorm"

// QueryOption mutates a gorm statement before execution.
type QueryOption interface {
	Apply(db *gorm.DB) *gorm.DB
}

type optionFunc func(db *gorm.DB) *gorm.DB

func (f optionFunc) Apply(db *gorm.DB) *gorm.DB { return f(db) }

func WithLimit(limit int) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	})
}

func WithOrder(order string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if order == "" {
			return db
		}
		return db.Order(order)
	})
}

func WithPreload(relation string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		return db.Preload(relation)
	})
}

// WithWhere adds an explicit condition. Struct filters drop zero-valued
// fields, so boolean and zero-id filters must come through here.
func WithWhere(query string, args ...any) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	})
}

// WithAfterID makes the query resume after a cursor position.
func WithAfterID(id int64) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if id <= 0 {
			return db
		}
		return db.Where("id > ?", id)
	})
}
