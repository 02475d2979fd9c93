package adminController_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductResolvesCategoryByName(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	token := testutil.TokenFor(t, admin)

	form := url.Values{}
	form.Set("name", "Pixel 9")
	form.Set("price", "59999.50")
	form.Set("stock", "12")
	form.Set("category", "Mobiles")
	form.Set("description", "Latest Pixel")

	w := testutil.DoForm(t, r, http.MethodPost, "/admin/products", form, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.Preload("Category").Where("name = ?", "Pixel 9").First(&product).Error)
	assert.Equal(t, 59999.50, product.Price)
	assert.Equal(t, 12, product.Stock)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Mobiles", product.Category.Name)

	// a second product with the same category name reuses the row
	form.Set("name", "Pixel 9a")
	w = testutil.DoForm(t, r, http.MethodPost, "/admin/products", form, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.Category{}).Where("name = ?", "Mobiles").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateProductDefaultsCategoryToGeneral(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)

	form := url.Values{}
	form.Set("name", "Mystery Box")
	form.Set("price", "10")
	form.Set("stock", "1")

	w := testutil.DoForm(t, r, http.MethodPost, "/admin/products", form, testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.Preload("Category").Where("name = ?", "Mystery Box").First(&product).Error)
	require.NotNil(t, product.Category)
	assert.Equal(t, "General", product.Category.Name)
}

func TestCreateProductRejectsBadNumbers(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	token := testutil.TokenFor(t, admin)

	form := url.Values{}
	form.Set("name", "Broken")
	form.Set("price", "not-a-price")
	form.Set("stock", "3")

	w := testutil.DoForm(t, r, http.MethodPost, "/admin/products", form, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form.Set("price", "10")
	form.Set("stock", "three")
	w = testutil.DoForm(t, r, http.MethodPost, "/admin/products", form, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateProductRejectedImageKeepsOldImage(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)

	product := models.Product{Name: "Cam", Price: 100, Stock: 5, Image: "cam-old.jpg"}
	require.NoError(t, db.Create(&product).Error)

	w := testutil.DoMultipart(t, r, http.MethodPut, fmt.Sprintf("/admin/products/%d", product.ID),
		map[string]string{
			"name":  "Cam v2",
			"price": "120",
			"stock": "7",
		},
		"image", "malware.exe", []byte("MZ"), testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	body := testutil.Body(t, w)
	warnings, _ := body["warnings"].([]interface{})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Invalid image type")

	// the rest of the update still applied; the old image survived
	require.NoError(t, db.First(&product, product.ID).Error)
	assert.Equal(t, "Cam v2", product.Name)
	assert.Equal(t, float64(120), product.Price)
	assert.Equal(t, 7, product.Stock)
	assert.Equal(t, "cam-old.jpg", product.Image)
}

func TestUpdateProductAcceptsAllowedImage(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)

	product := models.Product{Name: "Cam", Price: 100, Stock: 5, Image: "cam-old.jpg"}
	require.NoError(t, db.Create(&product).Error)

	w := testutil.DoMultipart(t, r, http.MethodPut, fmt.Sprintf("/admin/products/%d", product.ID),
		map[string]string{
			"name":  "Cam",
			"price": "100",
			"stock": "5",
		},
		"image", "New Photo.JPG", []byte{0xff, 0xd8, 0xff}, testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&product, product.ID).Error)
	assert.NotEqual(t, "cam-old.jpg", product.Image)
	assert.Contains(t, product.Image, "new-photo")
}

func TestDeleteProductDetachesOrderItems(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", true)
	buyer := testutil.CreateUser(t, db, "buyer@example.com", false)

	product := testutil.CreateProduct(t, db, "Discontinued", 250, 5)

	order := models.Order{UserID: buyer.ID, TotalAmount: 500, OrderStatus: models.OrderStatusDelivered}
	require.NoError(t, db.Create(&order).Error)
	pid := product.ID
	item := models.OrderItem{
		OrderID: order.ID, ProductID: &pid,
		ProductName: "Discontinued", Quantity: 2, UnitPrice: 250, Subtotal: 500,
	}
	require.NoError(t, db.Create(&item).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ProductID: product.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.WishlistItem{UserID: buyer.ID, ProductID: product.ID}).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil,
		testutil.TokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	// live references are gone
	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.WishlistItem{}).Count(&count)
	assert.Zero(t, count)

	// but the order history keeps its snapshot, detached from the product
	require.NoError(t, db.First(&item, item.ID).Error)
	assert.Nil(t, item.ProductID)
	assert.Equal(t, "Discontinued", item.ProductName)
	assert.Equal(t, float64(500), item.Subtotal)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, float64(500), order.TotalAmount)
}
