// Package content implements the get-or-create-default pattern for singleton
// documents (footer, shipping content). Uniqueness of the singleton_key
// column plus a conflict-ignoring insert keeps concurrent first reads from
// ever producing two documents.
package content

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetOrCreate returns the sole document with the given singleton key,
// inserting defaults() on first read. After the first successful call exactly
// one document with that key exists.
func GetOrCreate[T any](db *gorm.DB, key string, defaults func() T) (T, error) {
	var doc T
	err := db.Where("singleton_key = ?", key).First(&doc).Error
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return doc, err
	}

	fresh := defaults()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return doc, err
	}

	// Re-read rather than trusting fresh: a concurrent caller may have won
	// the insert.
	err = db.Where("singleton_key = ?", key).First(&doc).Error
	return doc, err
}

// Update applies the supplied column values to the singleton, creating it
// from defaults first if absent. Columns not present in updates are left
// untouched.
func Update[T any](db *gorm.DB, key string, defaults func() T, updates map[string]interface{}) (T, error) {
	doc, err := GetOrCreate(db, key, defaults)
	if err != nil {
		return doc, err
	}

	if len(updates) > 0 {
		if err := db.Model(&doc).Updates(updates).Error; err != nil {
			return doc, err
		}
		err = db.Where("singleton_key = ?", key).First(&doc).Error
	}
	return doc, err
}
