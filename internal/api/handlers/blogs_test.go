package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/testutil"
)

type blogPage struct {
	Items      []domain.Blog           `json:"items"`
	Pagination response.PaginationMeta `json:"pagination"`
}

func TestBlogVisibility(t *testing.T) {
	ts := testutil.NewTestServer(t)

	published := testutil.NewBlogBuilder().WithTitle("Cara Merawat Mawar").Published().Build(t, ts.DB.DB)
	draft := testutil.NewBlogBuilder().WithTitle("Draf Rahasia").Build(t, ts.DB.DB)

	_, adminClient := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)
	_, customerClient := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	t.Run("public list hides drafts", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/blogs"))
		defer resp.Body.Close()

		var page blogPage
		testutil.AssertSuccessData(t, resp, http.StatusOK, &page)

		require.Len(t, page.Items, 1)
		assert.Equal(t, published.Slug, page.Items[0].Slug)
	})

	t.Run("admin list includes drafts", func(t *testing.T) {
		resp := get(t, adminClient, ts.APIURL("/blogs/all"))
		defer resp.Body.Close()

		var page blogPage
		testutil.AssertSuccessData(t, resp, http.StatusOK, &page)
		assert.Len(t, page.Items, 2)
	})

	t.Run("admin list is gated", func(t *testing.T) {
		resp := get(t, customerClient, ts.APIURL("/blogs/all"))
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})

	t.Run("draft get is 404 for the public", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/blogs/"+draft.Slug))
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusNotFound, "blog post not found")
	})

	t.Run("draft get is 404 for customers", func(t *testing.T) {
		resp := get(t, customerClient, ts.APIURL("/blogs/"+draft.Slug))
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("draft get works for admins", func(t *testing.T) {
		resp := get(t, adminClient, ts.APIURL("/blogs/"+draft.Slug))
		defer resp.Body.Close()

		var blog domain.Blog
		testutil.AssertSuccessData(t, resp, http.StatusOK, &blog)
		assert.False(t, blog.Published)
	})

	t.Run("published get is public", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/blogs/"+published.Slug))
		defer resp.Body.Close()

		var blog domain.Blog
		testutil.AssertSuccessData(t, resp, http.StatusOK, &blog)
		assert.Equal(t, "Cara Merawat Mawar", blog.Title)
	})
}

func TestBlogManagement(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, client := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

	t.Run("create derives slug and read time", func(t *testing.T) {
		resp := postJSON(t, client, ts.APIURL("/blogs"), map[string]interface{}{
			"title":   "Tips Memilih Bunga Untuk Wisuda",
			"content": "Isi artikel yang cukup panjang.",
		})
		defer resp.Body.Close()

		var created domain.Blog
		testutil.AssertSuccessData(t, resp, http.StatusCreated, &created)
		assert.Equal(t, "tips-memilih-bunga-untuk-wisuda", created.Slug)
		assert.Equal(t, 5, created.ReadTime)
		assert.False(t, created.Published)
	})

	t.Run("explicit slug wins over the title", func(t *testing.T) {
		resp := postJSON(t, client, ts.APIURL("/blogs"), map[string]interface{}{
			"title":    "Judul Panjang Sekali Yang Tidak Dipakai",
			"slug":     "judul-pendek",
			"content":  "Isi.",
			"readTime": 8,
		})
		defer resp.Body.Close()

		var created domain.Blog
		testutil.AssertSuccessData(t, resp, http.StatusCreated, &created)
		assert.Equal(t, "judul-pendek", created.Slug)
		assert.Equal(t, 8, created.ReadTime)
	})

	t.Run("publish toggle", func(t *testing.T) {
		resp := putJSON(t, client, ts.APIURL("/blogs/judul-pendek"), map[string]interface{}{
			"published": true,
		})
		defer resp.Body.Close()

		var updated domain.Blog
		testutil.AssertSuccessData(t, resp, http.StatusOK, &updated)
		assert.True(t, updated.Published)

		// Now visible on the public surface.
		pub := get(t, ts.Client(t), ts.APIURL("/blogs/judul-pendek"))
		defer pub.Body.Close()
		testutil.AssertStatusCode(t, pub, http.StatusOK)
	})

	t.Run("delete", func(t *testing.T) {
		resp := del(t, client, ts.APIURL("/blogs/judul-pendek"))
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		resp.Body.Close()

		resp = get(t, client, ts.APIURL("/blogs/judul-pendek"))
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("writes are admin only", func(t *testing.T) {
		_, customer := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		resp := postJSON(t, customer, ts.APIURL("/blogs"), map[string]interface{}{
			"title":   "Tidak Boleh",
			"content": "Isi.",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})
}
