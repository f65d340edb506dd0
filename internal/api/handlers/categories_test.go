package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/testutil"
)

func TestCategoryPublicReads(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roses := testutil.NewCategoryBuilder().WithSlug("buket-mawar").WithName("Buket Mawar").Build(t, ts.DB.DB)
	testutil.NewCategoryBuilder().WithSlug("buket-lily").WithName("Buket Lily").Build(t, ts.DB.DB)
	testutil.NewProductBuilder(roses.ID).Build(t, ts.DB.DB)
	testutil.NewProductBuilder(roses.ID).Build(t, ts.DB.DB)

	t.Run("list carries product counts", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/categories"))
		defer resp.Body.Close()

		var categories []domain.Category
		testutil.AssertSuccessData(t, resp, http.StatusOK, &categories)
		assert.Len(t, categories, 2)

		counts := map[string]int64{}
		for _, c := range categories {
			counts[c.Slug] = c.ProductCount
		}
		assert.Equal(t, int64(2), counts["buket-mawar"])
		assert.Equal(t, int64(0), counts["buket-lily"])
	})

	t.Run("get by slug", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/categories/buket-mawar"))
		defer resp.Body.Close()

		var category domain.Category
		testutil.AssertSuccessData(t, resp, http.StatusOK, &category)
		assert.Equal(t, "Buket Mawar", category.Name)
	})

	t.Run("unknown slug", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/categories/no-such-category"))
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusNotFound, "category not found")
	})
}

func TestCategoryManagement(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, client := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

	t.Run("create", func(t *testing.T) {
		resp := postJSON(t, client, ts.APIURL("/categories"), map[string]string{
			"slug": "bunga-papan",
			"name": "Bunga Papan",
		})
		defer resp.Body.Close()

		var created domain.Category
		testutil.AssertSuccessData(t, resp, http.StatusCreated, &created)
		assert.Equal(t, "bunga-papan", created.Slug)
	})

	t.Run("slug format is enforced", func(t *testing.T) {
		for _, slug := range []string{"Has Caps", "under_score", "spaced slug", "trailing!"} {
			resp := postJSON(t, client, ts.APIURL("/categories"), map[string]string{
				"slug": slug,
				"name": "Whatever",
			})
			testutil.AssertErrorEnvelope(t, resp, http.StatusUnprocessableEntity, "lowercase alphanumeric")
			resp.Body.Close()
		}
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		resp := postJSON(t, client, ts.APIURL("/categories"), map[string]string{
			"slug": "bunga-papan",
			"name": "Bunga Papan Lagi",
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusConflict, "")
	})

	t.Run("update name", func(t *testing.T) {
		resp := putJSON(t, client, ts.APIURL("/categories/bunga-papan"), map[string]string{
			"name": "Papan Bunga",
		})
		defer resp.Body.Close()

		var updated domain.Category
		testutil.AssertSuccessData(t, resp, http.StatusOK, &updated)
		assert.Equal(t, "Papan Bunga", updated.Name)
		assert.Equal(t, "bunga-papan", updated.Slug)
	})

	t.Run("delete is blocked while products reference it", func(t *testing.T) {
		occupied := testutil.NewCategoryBuilder().WithSlug("buket-matahari").Build(t, ts.DB.DB)
		testutil.NewProductBuilder(occupied.ID).Build(t, ts.DB.DB)

		resp := del(t, client, ts.APIURL("/categories/buket-matahari"))
		testutil.AssertErrorEnvelope(t, resp, http.StatusBadRequest, "related data")
		resp.Body.Close()

		// The category survives the refused delete.
		resp = get(t, ts.Client(t), ts.APIURL("/categories/buket-matahari"))
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("delete", func(t *testing.T) {
		resp := del(t, client, ts.APIURL("/categories/bunga-papan"))
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		resp.Body.Close()

		resp = get(t, ts.Client(t), ts.APIURL("/categories/bunga-papan"))
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("writes are admin only", func(t *testing.T) {
		_, customer := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		resp := postJSON(t, customer, ts.APIURL("/categories"), map[string]string{
			"slug": "forbidden",
			"name": "Forbidden",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})
}
