package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one key/value row.
type Record struct {
	Key   string `gorm:"column:record_key;primaryKey;type:varchar(255)"`
	Value []byte `gorm:"column:record_value"`
}

// TableName pins the table name.
func (Record) TableName() string {
	return "kv_records"
}

// GORMStore is a GORM implementation of Store over a single key/value table.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore migrates the key/value table and returns a store using db.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_records: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// OpenSQLite opens a SQLite database. "file::memory:?cache=shared" gives an in-memory one.
func OpenSQLite(dsn string) (*GORMStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	return NewGORMStore(db)
}

// OpenPostgres opens a PostgreSQL database from a DSN.
func OpenPostgres(dsn string) (*GORMStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return NewGORMStore(db)
}

// Get retrieves the value stored at key.
func (s *GORMStore) Get(key string) ([]byte, error) {
	var rec Record
	if err := s.db.First(&rec, "record_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return rec.Value, nil
}

// Set inserts or replaces the value at key.
func (s *GORMStore) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"record_value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the row for key. Missing rows are not an error.
func (s *GORMStore) Remove(key string) error {
	if err := s.db.Delete(&Record{}, "record_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *GORMStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
