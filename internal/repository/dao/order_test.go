package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDAOInsert_computesFinalAmount(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Order{TotalAmount: 200, Discount: 50})
	require.NoError(t, err)

	assert.Equal(t, float64(150), created.FinalAmount)
	assert.Equal(t, "pending", created.Status)

	got, err := d.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(150), got.FinalAmount)
}

func TestOrderDAOInsert_discountLargerThanTotal(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)

	created, err := d.Insert(context.Background(), Order{TotalAmount: 30, Discount: 100})
	require.NoError(t, err)

	// Stored as-is, no clamping.
	assert.Equal(t, float64(-70), created.FinalAmount)
}

func TestOrderDAOInsertItem_computesTotalPrice(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	ctx := context.Background()

	product, err := NewProductDAO(db).Insert(ctx, Product{Name: "Gift Box", Category: "Other", Price: 35, Cost: 15, Stock: 10})
	require.NoError(t, err)

	order, err := d.Insert(ctx, Order{TotalAmount: 105})
	require.NoError(t, err)

	item, err := d.InsertItem(ctx, OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 3, UnitPrice: 35})
	require.NoError(t, err)
	assert.Equal(t, float64(105), item.TotalPrice)

	rows, err := d.FindItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gift Box", rows[0].ProductName)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, float64(105), rows[0].TotalPrice)
}

func TestOrderDAOFindAll_joinsCustomerName(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	ctx := context.Background()

	customer, err := NewCustomerDAO(db).Insert(ctx, Customer{Name: "Alex Chen"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Order{CustomerID: &customer.ID, TotalAmount: 80})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Order{TotalAmount: 40}) // walk-in, no customer
	require.NoError(t, err)

	rows, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	names := []string{rows[0].CustomerName, rows[1].CustomerName}
	assert.Contains(t, names, "Alex Chen")
	assert.Contains(t, names, "")
}

func TestOrderDAOGetByID_notFound(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)

	_, err := d.GetByID(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderDAOUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Order{TotalAmount: 60})
	require.NoError(t, err)

	require.NoError(t, d.UpdateStatus(ctx, created.ID, "completed"))

	got, err := d.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
}

func TestOrderDAOSalesSummary_inclusiveDateRange(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	ctx := context.Background()

	day := func(date string, amount float64) Order {
		ts, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		return Order{TotalAmount: amount, CreatedAt: ts.UTC()}
	}

	for _, order := range []Order{
		day("2026-08-01", 100),
		day("2026-08-10", 200),
		day("2026-08-20", 300),
		day("2026-08-21", 400),
	} {
		_, err := d.Insert(ctx, order)
		require.NoError(t, err)
	}

	// Both bounds land on order dates and are included.
	summary, err := d.SalesSummary(ctx, "2026-08-10", "2026-08-20")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, float64(500), summary.TotalSales)
}

func TestOrderDAOSalesSummary_noFilterWithoutBothBounds(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	ctx := context.Background()

	_, err := d.Insert(ctx, Order{TotalAmount: 100, Discount: 20})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Order{TotalAmount: 50})
	require.NoError(t, err)

	// A lone bound is ignored and everything is counted.
	summary, err := d.SalesSummary(ctx, "2099-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, float64(130), summary.TotalSales)
}

func TestOrderDAOSalesSummary_emptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)

	summary, err := d.SalesSummary(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, float64(0), summary.TotalSales)
}

func TestOrderDAOTopSelling(t *testing.T) {
	db := setupTestDB(t)
	d := NewOrderDAO(db)
	productDAO := NewProductDAO(db)
	ctx := context.Background()

	mug, err := productDAO.Insert(ctx, Product{Name: "Mug", Category: "Other", Price: 12, Cost: 4, Stock: 100})
	require.NoError(t, err)
	candle, err := productDAO.Insert(ctx, Product{Name: "Candle", Category: "Other", Price: 18, Cost: 6, Stock: 100})
	require.NoError(t, err)
	card, err := productDAO.Insert(ctx, Product{Name: "Card", Category: "Other", Price: 5, Cost: 1, Stock: 100})
	require.NoError(t, err)

	order, err := d.Insert(ctx, Order{TotalAmount: 500})
	require.NoError(t, err)

	for _, item := range []OrderItem{
		{OrderID: order.ID, ProductID: mug.ID, Quantity: 2, UnitPrice: 12},
		{OrderID: order.ID, ProductID: candle.ID, Quantity: 7, UnitPrice: 18},
		{OrderID: order.ID, ProductID: card.ID, Quantity: 4, UnitPrice: 5},
	} {
		_, err = d.InsertItem(ctx, item)
		require.NoError(t, err)
	}

	rows, err := d.TopSelling(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Candle", rows[0].Name)
	assert.Equal(t, int64(7), rows[0].TotalSold)
	assert.Equal(t, float64(126), rows[0].TotalRevenue)
	assert.Equal(t, "Card", rows[1].Name)
	assert.Equal(t, int64(4), rows[1].TotalSold)
}
