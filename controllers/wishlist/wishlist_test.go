package wishlistControllers_test

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

func TestWishlistAddIsUniquePerProduct(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	user := testutil.CreateUser(t, db, "buyer@example.com", false)
	token := testutil.TokenFor(t, user)
	product := testutil.CreateProduct(t, db, "Wanted Thing", 10, 5)

	path := fmt.Sprintf("/wishlist/%d", product.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, path, nil, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, path, nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestWishlistRemoveAndList(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	user := testutil.CreateUser(t, db, "buyer@example.com", false)
	token := testutil.TokenFor(t, user)
	product := testutil.CreateProduct(t, db, "Wanted Thing", 10, 5)

	require.NoError(t, db.Create(&models.WishlistItem{UserID: user.ID, ProductID: product.ID}).Error)

	w := testutil.DoJSON(t, r, http.MethodGet, "/wishlist", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.WishlistItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Wanted Thing", items[0].Product.Name)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/wishlist/%d", product.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/wishlist/%d", product.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
