package clientstore

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	c.Request = req
	return c, w
}

func TestCookieStore_RoundTrip(t *testing.T) {
	c, w := newContext()
	store := New(c, CookieOptions{Secure: true})

	_, ok := store.Get("preferred_currency")
	assert.False(t, ok)

	require.NoError(t, store.Set("preferred_currency", "EUR"))
	got, ok := store.Get("preferred_currency")
	assert.True(t, ok)
	assert.Equal(t, "EUR", got)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "preferred_currency", cookies[0].Name)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString([]byte("EUR")), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, cookieMaxAge, cookies[0].MaxAge)
}

func TestCookieStore_ReadsRequestCookie(t *testing.T) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(`[{"productID":"p1"}]`))
	c, _ := newContext(&http.Cookie{Name: "compare_list", Value: encoded})
	store := New(c, CookieOptions{})

	got, ok := store.Get("compare_list")
	assert.True(t, ok)
	assert.Equal(t, `[{"productID":"p1"}]`, got)

	store.Delete("compare_list")
	_, ok = store.Get("compare_list")
	assert.False(t, ok)
}

func TestCookieStore_CorruptedValueIsAbsent(t *testing.T) {
	c, _ := newContext(&http.Cookie{Name: "wishlist", Value: "%%%not-base64"})
	_, ok := New(c, CookieOptions{}).Get("wishlist")
	assert.False(t, ok)
}

func TestCookieStore_RejectsOversizedValue(t *testing.T) {
	c, w := newContext()
	err := New(c, CookieOptions{}).Set("wishlist", strings.Repeat("x", maxCookieBytes))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, w.Result().Cookies())
}
