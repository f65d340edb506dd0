package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastasya/flower-shop/internal/api/middleware"
	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/testutil"
)

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("creates a customer account", func(t *testing.T) {
		client := ts.Client(t)
		resp := postJSON(t, client, ts.APIURL("/auth/register"), map[string]string{
			"email":    "anastasya@florist.test",
			"password": "Mawarmerah1",
			"name":     "Anastasya",
		})
		defer resp.Body.Close()

		var data struct {
			User domain.User `json:"user"`
		}
		testutil.AssertSuccessData(t, resp, http.StatusCreated, &data)

		assert.NotZero(t, data.User.ID)
		assert.Equal(t, "anastasya@florist.test", data.User.Email)
		assert.Equal(t, domain.RoleCustomer, data.User.Role)

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie, "register must set the session cookie")
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)

		// The cookie jar now carries the session.
		me := get(t, client, ts.APIURL("/auth/me"))
		defer me.Body.Close()
		testutil.AssertStatusCode(t, me, http.StatusOK)
	})

	t.Run("never serializes the password hash", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/register"), map[string]string{
			"email":    "hash-check@florist.test",
			"password": "Mawarmerah1",
			"name":     "Hash Check",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToLower(string(body)), "password")
	})

	t.Run("role in the payload is ignored", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/register"), map[string]string{
			"email":    "sneaky@florist.test",
			"password": "Mawarmerah1",
			"name":     "Sneaky",
			"role":     "ADMIN",
		})
		defer resp.Body.Close()

		var data struct {
			User domain.User `json:"user"`
		}
		testutil.AssertSuccessData(t, resp, http.StatusCreated, &data)
		assert.Equal(t, domain.RoleCustomer, data.User.Role)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		testutil.NewUserBuilder().WithEmail("taken@florist.test").Build(t, ts.DB.DB)

		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/register"), map[string]string{
			"email":    "taken@florist.test",
			"password": "Mawarmerah1",
			"name":     "Late Comer",
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusConflict, "already registered")
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/register"), map[string]string{
			"email":    "weak@florist.test",
			"password": "alllowercase",
			"name":     "Weak",
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusUnprocessableEntity, "password")
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/register"), map[string]string{})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
		env := testutil.DecodeEnvelope(t, resp)
		assert.Contains(t, env.Message, "email")
		assert.Contains(t, env.Message, "password")
		assert.Contains(t, env.Message, "name")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := ts.Client(t).Post(ts.APIURL("/auth/register"), "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusBadRequest, "invalid JSON")
	})
}

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	customer, password := testutil.NewUserBuilder().WithEmail("customer@florist.test").Build(t, ts.DB.DB)
	_, adminPassword := testutil.NewUserBuilder().WithEmail("admin@florist.test").AsAdmin().Build(t, ts.DB.DB)

	t.Run("customer logs in", func(t *testing.T) {
		client := ts.Client(t)
		resp := postJSON(t, client, ts.APIURL("/auth/login"), map[string]string{
			"email":    customer.Email,
			"password": password,
		})
		defer resp.Body.Close()

		var data struct {
			User domain.User `json:"user"`
		}
		testutil.AssertSuccessData(t, resp, http.StatusOK, &data)
		assert.Equal(t, customer.ID, data.User.ID)
		require.NotNil(t, sessionCookie(resp))
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/login"), map[string]string{
			"email":    customer.Email,
			"password": "Wrongpassword1",
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusUnauthorized, "invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/login"), map[string]string{
			"email":    "nobody@florist.test",
			"password": "Whatever123",
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusUnauthorized, "invalid credentials")
	})

	t.Run("admin without secret", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/login"), map[string]string{
			"email":    "admin@florist.test",
			"password": adminPassword,
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusForbidden, "admin secret")
	})

	t.Run("admin with wrong secret", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/login"), map[string]string{
			"email":       "admin@florist.test",
			"password":    adminPassword,
			"adminSecret": "not-the-secret",
		})
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusForbidden, "admin secret")
	})

	t.Run("admin with secret", func(t *testing.T) {
		resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/login"), map[string]string{
			"email":       "admin@florist.test",
			"password":    adminPassword,
			"adminSecret": ts.Config.Auth.AdminSecret,
		})
		defer resp.Body.Close()

		var data struct {
			User domain.User `json:"user"`
		}
		testutil.AssertSuccessData(t, resp, http.StatusOK, &data)
		assert.Equal(t, domain.RoleAdmin, data.User.Role)
	})
}

func TestSessionLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("me without a session", func(t *testing.T) {
		resp := get(t, ts.Client(t), ts.APIURL("/auth/me"))
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusUnauthorized, "Authentication required")
	})

	t.Run("me with a forged cookie", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "forged.token.value"})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertErrorEnvelope(t, resp, http.StatusUnauthorized, "Authentication required")
	})

	t.Run("logout ends the session", func(t *testing.T) {
		builder := testutil.NewUserBuilder().WithEmail("lifecycle@florist.test")
		user, client := builder.BuildAndLogin(t, ts)

		me := get(t, client, ts.APIURL("/auth/me"))
		var data struct {
			User domain.User `json:"user"`
		}
		testutil.AssertSuccessData(t, me, http.StatusOK, &data)
		me.Body.Close()
		assert.Equal(t, user.Email, data.User.Email)

		logout := postJSON(t, client, ts.APIURL("/auth/logout"), nil)
		testutil.AssertStatusCode(t, logout, http.StatusOK)
		logout.Body.Close()

		after := get(t, client, ts.APIURL("/auth/me"))
		defer after.Body.Close()
		testutil.AssertStatusCode(t, after, http.StatusUnauthorized)
	})

	t.Run("logout is idempotent", func(t *testing.T) {
		client := ts.Client(t)
		for i := 0; i < 2; i++ {
			resp := postJSON(t, client, ts.APIURL("/auth/logout"), nil)
			testutil.AssertStatusCode(t, resp, http.StatusOK)
			resp.Body.Close()
		}
	})
}

// Guard against the envelope silently growing fields the storefront client
// does not expect.
func TestAuthEnvelopeShape(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.Client(t), ts.APIURL("/auth/register"), map[string]string{
		"email":    "shape@florist.test",
		"password": "Mawarmerah1",
		"name":     "Shape",
	})
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Len(t, envelope, 3)
	for _, key := range []string{"success", "message", "data"} {
		assert.Contains(t, envelope, key)
	}
}
