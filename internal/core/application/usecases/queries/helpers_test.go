package queries_test

import (
	"testing"
	"time"

	"attendance/internal/core/domain/model/kernel"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var day = time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, fromHour, toHour int) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(day.Add(time.Duration(fromHour)*time.Hour), day.Add(time.Duration(toHour)*time.Hour))
	require.NoError(t, err)
	return w
}
