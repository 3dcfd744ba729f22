package store

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key-value pair.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (Entry) TableName() string { return "store_entries" }

// DB is the sqlite-backed Store used by the running app.
type DB struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite file at path and
// migrates the entries table.
func Open(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (s *DB) Get(key string) (string, bool, error) {
	var e Entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *DB) Put(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

func (s *DB) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
