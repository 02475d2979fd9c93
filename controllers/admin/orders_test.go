package adminController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", false)

	order := models.Order{UserID: buyer.ID, TotalAmount: 10, OrderStatus: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]string{"status": "Teleported"}, testutil.TokenFor(t, admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
}

func TestUpdateOrderStatusFollowsTransitions(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", false)
	token := testutil.TokenFor(t, admin)

	order := models.Order{UserID: buyer.ID, TotalAmount: 10, OrderStatus: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)
	path := fmt.Sprintf("/admin/orders/%d/status", order.ID)

	// Pending cannot jump straight to Delivered
	w := testutil.DoJSON(t, r, http.MethodPut, path, map[string]string{"status": "Delivered"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPut, path, map[string]string{"status": "Shipped"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPut, path, map[string]string{"status": "Delivered"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Delivered is terminal
	w = testutil.DoJSON(t, r, http.MethodPut, path, map[string]string{"status": "Pending"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, order.OrderStatus)
}

func TestUpdateOrderStatusWritesAuditLog(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", false)

	order := models.Order{UserID: buyer.ID, TotalAmount: 10, OrderStatus: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	w := testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]string{"status": "Shipped"}, testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var entry models.AuditLog
	require.NoError(t, db.Where("record_type = ? AND record_id = ?", "order", order.ID).First(&entry).Error)
	assert.Equal(t, admin.ID, entry.AdminID)
	assert.Equal(t, "update_order_status", entry.Action)
	assert.Equal(t, "Shipped", entry.Details)
}

func TestGetOrdersFiltersByStatus(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", false)
	token := testutil.TokenFor(t, admin)

	require.NoError(t, db.Create(&models.Order{UserID: buyer.ID, TotalAmount: 1, OrderStatus: models.OrderStatusPending}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: buyer.ID, TotalAmount: 2, OrderStatus: models.OrderStatusShipped}).Error)

	w := testutil.DoJSON(t, r, http.MethodGet, "/admin/orders?status=Shipped", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusShipped, orders[0].OrderStatus)

	w = testutil.DoJSON(t, r, http.MethodGet, "/admin/orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestDashboardCounts(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", false)

	testutil.CreateProduct(t, db, "A", 1, 1)
	testutil.CreateProduct(t, db, "B", 2, 2)
	require.NoError(t, db.Create(&models.Order{UserID: buyer.ID, TotalAmount: 1, OrderStatus: models.OrderStatusPending}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: buyer.ID, TotalAmount: 2, OrderStatus: models.OrderStatusDelivered}).Error)

	w := testutil.DoJSON(t, r, http.MethodGet, "/admin/dashboard", nil, testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	assert.EqualValues(t, 2, body["total_products"])
	assert.EqualValues(t, 2, body["total_orders"])
	assert.EqualValues(t, 1, body["pending_orders"])
	assert.EqualValues(t, 1, body["delivered_orders"])
}

func TestAdminRoutesRequireAdminFlag(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	user := testutil.CreateUser(t, db, "user@example.com", false)

	w := testutil.DoJSON(t, r, http.MethodGet, "/admin/dashboard", nil, testutil.TokenFor(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
