package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderListParamsWhereClause(t *testing.T) {
	p := &OrderListParams{Status: "pending", Search: "0712"}
	where, args := p.whereClause()

	assert.Contains(t, where, "status = $1")
	assert.Contains(t, where, "phone ILIKE $2")
	assert.Contains(t, where, "order_code ILIKE $2")
	require.Len(t, args, 2)
	assert.Equal(t, "pending", args[0])
	assert.Equal(t, "%0712%", args[1])
}

func TestGetStatsDeliveredRevenueOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`(?s)SUM\(total_amount\) FILTER \(WHERE status = 'delivered'\).*COUNT\(1\) FILTER \(WHERE status = 'pending'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total_revenue", "total_orders", "pending_orders"}).
			AddRow(1500.0, 12, 3))

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1500.0, stats.TotalRevenue)
	assert.Equal(t, 12, stats.TotalOrders)
	assert.Equal(t, 3, stats.PendingOrders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesByMonthBucketsNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`(?s)to_char\(created_at, 'YYYY-MM'\).*WHERE status = 'delivered'.*ORDER BY 1 DESC.*LIMIT \$1`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"month", "total"}).
			AddRow("2026-08", 900.0).
			AddRow("2026-07", 400.0))

	sales, err := repo.SalesByMonth(6)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "2026-08", sales[0].Month)
	assert.Equal(t, 900.0, sales[0].Total)
	assert.Equal(t, "2026-07", sales[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}
