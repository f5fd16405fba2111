package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fightcard/internal/microservices/http-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a file-backed SQLite database with foreign keys enforced
// and the production models migrated. One connection keeps streams and
// writes in a test strictly ordered.
func newTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, 1)
}

// newConcurrentTestDB allows several open connections in WAL mode so
// statements from different goroutines really overlap; writers queue on the
// busy timeout instead of failing.
func newConcurrentTestDB(t *testing.T, maxOpenConns int) *gorm.DB {
	return openTestDB(t, maxOpenConns)
}

func openTestDB(t *testing.T, maxOpenConns int) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fightcard.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}, &models.Fight{}, &models.Rating{}, &models.Comment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedFight(t *testing.T, db *gorm.DB, f1, f2 string, date time.Time) *models.Fight {
	t.Helper()
	f := &models.Fight{Title: f1 + " vs " + f2, Fighter1: f1, Fighter2: f2, Date: date}
	require.NoError(t, NewFightRepo(db).Create(context.Background(), f))
	return f
}

func countRatings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&n).Error)
	return n
}
