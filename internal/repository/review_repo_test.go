package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var reviewColumns = []string{
	"id", "product_id", "name", "whatsapp", "rating", "comment", "is_approved", "created_at",
}

func approvedReviewRow(id int) *sqlmock.Rows {
	return sqlmock.NewRows(reviewColumns).
		AddRow(id, 3, "Jane", nil, 5, "Great phone", true, time.Now())
}

func TestApproveIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	// The update sets is_approved unconditionally, so a second approve
	// succeeds and returns the same approved row.
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`UPDATE reviews SET is_approved = true WHERE id = \$1`).
			WithArgs(7).
			WillReturnRows(approvedReviewRow(7))
	}

	first, err := repo.Approve(7)
	require.NoError(t, err)
	assert.True(t, first.IsApproved)

	second, err := repo.Approve(7)
	require.NoError(t, err)
	assert.True(t, second.IsApproved)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`UPDATE reviews SET is_approved = true WHERE id = \$1`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Approve(999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListApprovedFiltersByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	productID := 3
	mock.ExpectQuery(`(?s)WHERE is_approved = true AND product_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(productID).
		WillReturnRows(approvedReviewRow(1))

	reviews, err := repo.ListApproved(&productID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.True(t, reviews[0].IsApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovedAllProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`(?s)WHERE is_approved = true ORDER BY created_at DESC, id DESC`).
		WillReturnRows(approvedReviewRow(1))

	reviews, err := repo.ListApproved(nil)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
