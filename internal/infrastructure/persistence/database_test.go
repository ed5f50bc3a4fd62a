package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/precast-erp/backend/internal/domain/contacts"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDatabase creates a Database instance with a mocked SQL connection
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	// pings are monitored, so the ping gorm sends on open must be skipped
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return &Database{DB: gormDB}, mock, mockDB
}

func TestDatabase_Ping(t *testing.T) {
	t.Run("successful ping", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectPing()
		require.NoError(t, db.Ping(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed ping", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		assert.Error(t, db.Ping(context.Background()))
	})
}

func TestDatabase_Stats(t *testing.T) {
	db, _, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.OpenConnections, 0)
}

func TestNewDatabase_SQLite(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: "file::memory:", MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	assert.True(t, db.DB.Migrator().HasTable(&contacts.Contact{}))
}

func TestGormTransactionManager(t *testing.T) {
	db := newTestDB(t)
	tm := NewGormTransactionManager(db)
	repo := NewGormContactRepository(db)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		c, err := contacts.NewContact(contacts.ContactTypeVendor, "", "", "Committed Supply")
		require.NoError(t, err)

		err = tm.WithinTransaction(ctx, func(txCtx context.Context) error {
			return repo.Save(txCtx, c)
		})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		c, err := contacts.NewContact(contacts.ContactTypeVendor, "", "", "Rolled Back Supply")
		require.NoError(t, err)

		boom := errors.New("boom")
		err = tm.WithinTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Save(txCtx, c); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = repo.FindByID(ctx, c.ID)
		assert.Error(t, err)
	})

	t.Run("nested calls join the outer transaction", func(t *testing.T) {
		c, err := contacts.NewContact(contacts.ContactTypeVendor, "", "", "Nested Supply")
		require.NoError(t, err)

		err = tm.WithinTransaction(ctx, func(outer context.Context) error {
			if err := tm.WithinTransaction(outer, func(inner context.Context) error {
				return repo.Save(inner, c)
			}); err != nil {
				return err
			}
			return errors.New("abort outer")
		})
		require.Error(t, err)

		_, err = repo.FindByID(ctx, c.ID)
		assert.Error(t, err)
	})
}
