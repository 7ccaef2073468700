// Package dbtest открывает мигрированную sqlite-базу в памяти для тестов.
package dbtest

import (
	"testing"

	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/config"
	"github.com/Leganyst/tour-marketplace/internal/db"
	"github.com/Leganyst/tour-marketplace/internal/model"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewGormDB(&config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
		LogLevel:   "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gormDB
}
