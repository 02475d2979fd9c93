package reviewControllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewUpdatesRatingAverage(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	alice := testutil.CreateUser(t, db, "alice@example.com", false)
	bob := testutil.CreateUser(t, db, "bob@example.com", false)
	product := testutil.CreateProduct(t, db, "Rated Thing", 10, 5)

	path := fmt.Sprintf("/products/%d/reviews", product.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, path,
		map[string]interface{}{"rating": 5, "comment": "great"}, testutil.TokenFor(t, alice))
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, path,
		map[string]interface{}{"rating": 2, "comment": "meh"}, testutil.TokenFor(t, bob))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, db.First(&product, product.ID).Error)
	assert.InDelta(t, 3.5, product.RatingAvg, 0.001)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	r, db := testutil.SetupRouter(t)
	user := testutil.CreateUser(t, db, "alice@example.com", false)
	token := testutil.TokenFor(t, user)
	product := testutil.CreateProduct(t, db, "Rated Thing", 10, 5)

	path := fmt.Sprintf("/products/%d/reviews", product.ID)

	for _, rating := range []int{0, 6, -1} {
		w := testutil.DoJSON(t, r, http.MethodPost, path,
			map[string]interface{}{"rating": rating}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}
