package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockAdvertRepository(t *testing.T) (*GormAdvertRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormAdvertRepository(gormDB), mock, mockDB
}

func TestGormAdvertRepository_FindActive(t *testing.T) {
	t.Run("filters by active flag and display window in SQL", func(t *testing.T) {
		repo, mock, mockDB := newMockAdvertRepository(t)
		defer mockDB.Close()

		now := time.Now()
		advertID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "version", "title", "message", "active"}).
			AddRow(advertID, 1, "Summer Sale", "Up to 50% off", true)

		mock.ExpectQuery(`SELECT \* FROM "adverts" WHERE active = \$1 AND \(start_date IS NULL OR start_date <= \$2\) AND \(end_date IS NULL OR end_date >= \$3\) ORDER BY created_at DESC`).
			WithArgs(true, now, now).
			WillReturnRows(rows)

		adverts, err := repo.FindActive(context.Background(), now)

		assert.NoError(t, err)
		require.Len(t, adverts, 1)
		assert.Equal(t, advertID, adverts[0].ID)
		assert.Equal(t, "Summer Sale", adverts[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when no advert matches", func(t *testing.T) {
		repo, mock, mockDB := newMockAdvertRepository(t)
		defer mockDB.Close()

		now := time.Now()

		mock.ExpectQuery(`SELECT \* FROM "adverts" WHERE active = \$1`).
			WithArgs(true, now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "version", "title", "message", "active"}))

		adverts, err := repo.FindActive(context.Background(), now)

		assert.NoError(t, err)
		assert.Empty(t, adverts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
