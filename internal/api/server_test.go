package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"giftstore-backend/internal/config"
	"giftstore-backend/internal/repository/dao"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			Port:               "8080",
			AllowedCORSDomains: []string{"*"},
			JWTSigningKey:      "test-signing-key",
		},
		Gin:    &config.GinConfig{Mode: gin.TestMode},
		SQLite: &config.SQLiteConfig{Path: ":memory:"},
	}

	return NewServer(conf, db)
}

func do(t *testing.T, s *Server, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func TestServerHealthcheck(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
}

func TestServerOrderLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodPost, "/api/v1/products", gin.H{
		"name":     "Red Rose Bouquet",
		"category": "Romantic Gifts",
		"price":    150,
		"cost":     80,
		"stock":    20,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	productID := uint(body["product_id"].(float64))

	rec, body = do(t, s, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_name": "Alex Chen",
		"total_amount":  750,
		"items": []gin.H{
			{"product_id": productID, "quantity": 5, "unit_price": 150},
		},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	orderID := uint(body["order_id"].(float64))

	rec, body = do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", productID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	product := body["product"].(map[string]any)
	assert.Equal(t, float64(15), product["stock"])

	rec, body = do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", orderID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	order := body["order"].(map[string]any)
	assert.Equal(t, float64(750), order["final_amount"])
	assert.Equal(t, "Alex Chen", order["customer_name"])
	assert.Equal(t, "pending", order["status"])

	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Red Rose Bouquet", item["product_name"])
	assert.Equal(t, float64(750), item["total_price"])

	rec, _ = do(t, s, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d/status", orderID), gin.H{"status": "completed"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, s, http.MethodGet, "/api/v1/reports/sales-summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total_orders"])
	assert.Equal(t, float64(750), body["total_sales"])

	rec, body = do(t, s, http.MethodGet, "/api/v1/reports/top-products", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	top := body["products"].([]any)
	require.Len(t, top, 1)
	assert.Equal(t, "Red Rose Bouquet", top[0].(map[string]any)["name"])
	assert.Equal(t, float64(5), top[0].(map[string]any)["total_sold"])
}

func TestServerGetProduct_notFound(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodGet, "/api/v1/products/9999", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found", body["error"])
}

func TestServerAddProduct_missingName(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodPost, "/api/v1/products", gin.H{
		"category": "Other",
		"price":    10,
		"cost":     5,
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestServerAddCategory_duplicateName(t *testing.T) {
	s := newTestServer(t)

	rec, _ := do(t, s, http.MethodPost, "/api/v1/categories", gin.H{"name": "Accessories"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, s, http.MethodPost, "/api/v1/categories", gin.H{"name": "Accessories"}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestServerLowStockReport(t *testing.T) {
	s := newTestServer(t)

	rec, _ := do(t, s, http.MethodPost, "/api/v1/products", gin.H{
		"name": "Sold Out", "category": "Other", "price": 10, "cost": 5, "stock": 0,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, s, http.MethodPost, "/api/v1/products", gin.H{
		"name": "Well Stocked", "category": "Other", "price": 10, "cost": 5, "stock": 50,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, s, http.MethodGet, "/api/v1/reports/low-stock", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := body["products"].([]any)
	require.Len(t, products, 1)
	low := products[0].(map[string]any)
	assert.Equal(t, "Sold Out", low["name"])
	assert.Equal(t, float64(0), low["current_stock"])
	assert.Equal(t, float64(5), low["min_stock"]) // default applied
}

func TestServerExpenseDefaultsDate(t *testing.T) {
	s := newTestServer(t)

	rec, _ := do(t, s, http.MethodPost, "/api/v1/expenses", gin.H{
		"description": "Gift wrap rolls",
		"amount":      45,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, s, http.MethodGet, "/api/v1/expenses", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	expenses := body["expenses"].([]any)
	require.Len(t, expenses, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), expenses[0].(map[string]any)["date"])
}

func TestServerAuthProtectsUsers(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"email":            "owner@giftstore.example",
		"password":         "opensesame1",
		"confirm_password": "opensesame1",
		"name":             "Store Owner",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	token := body["token"].(string)
	require.NotEmpty(t, token)
	userID := uint(body["user"].(map[string]any)["id"].(float64))

	rec, _ = do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", userID), nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body = do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", userID), nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "owner@giftstore.example", user["email"])
	assert.NotContains(t, user, "password")

	rec, body = do(t, s, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "owner@giftstore.example",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
}
