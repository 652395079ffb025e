// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"plantscan/entities"
	"plantscan/pkg/logger"
)

// OpenSQLite opens the catalog database and migrates it. The default DSN is
// an in-memory database, so everything seeded here lives for the process only.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// every new connection to :memory: is a fresh, empty database
	if isMemoryDSN(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sql handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := db.AutoMigrate(
		&entities.GuidePlant{},
		&entities.Member{},
		&entities.Post{},
		&entities.TagStat{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Seed fills empty tables. Tables that already hold rows are left alone.
func Seed(db *gorm.DB, plants []entities.GuidePlant, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, "guide_plants", plants); err != nil {
			return err
		}
		if err := seedTable(tx, "members", DefaultMembers()); err != nil {
			return err
		}
		if err := seedTable(tx, "posts", DefaultPosts(now)); err != nil {
			return err
		}
		return seedTable(tx, "tag_stats", DefaultTags())
	})
}

func seedTable[T any](tx *gorm.DB, table string, rows []T) error {
	var n int64
	if err := tx.Model(new(T)).Count(&n).Error; err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if n > 0 || len(rows) == 0 {
		return nil
	}
	if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	logger.For("database").WithField("table", table).WithField("rows", len(rows)).Debug("seeded")
	return nil
}
