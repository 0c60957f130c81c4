package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mahmoud1053/EventHub/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupAuthRouter(t *testing.T, tokens TokenParser) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.Use(Identify(tokens))

	r.GET("/public", func(c *ginext.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusOK, ginext.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"anonymous": false, "user_id": identity.UserID})
	})
	r.GET("/private", RequireAuth(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	r.GET("/admin", RequireAuth(), RequireAdmin(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return r
}

func doRequest(t *testing.T, r http.Handler, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestPath(t, r, "/private", bearer)
}

func doRequestPath(t *testing.T, r http.Handler, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentify_InvalidTokenIsAnonymous(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	// a garbage credential on a public route behaves exactly like no
	// credential at all
	w := doRequestPath(t, r, "/public", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":true`)

	w = doRequestPath(t, r, "/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"anonymous":true`)
}

func TestIdentify_ValidTokenAttachesIdentity(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	raw, err := tokens.Issue(42, false)
	require.NoError(t, err)

	w := doRequestPath(t, r, "/public", raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	w := doRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired := token.NewManager("test-secret", -time.Minute)
	raw, err := expired.Issue(42, false)
	require.NoError(t, err)
	w = doRequest(t, r, raw)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	raw, err = tokens.Issue(42, false)
	require.NoError(t, err)
	w = doRequest(t, r, raw)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	raw, err := tokens.Issue(42, false)
	require.NoError(t, err)
	w := doRequestPath(t, r, "/admin", raw)
	assert.Equal(t, http.StatusForbidden, w.Code)

	raw, err = tokens.Issue(1, true)
	require.NoError(t, err)
	w = doRequestPath(t, r, "/admin", raw)
	assert.Equal(t, http.StatusOK, w.Code)
}
