package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

var tokens = utils.AdminTokenSigner{Secret: secret, Issuer: "storefront-test", Expiry: time.Hour}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		adminID, ok := middleware.GetAdminIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, adminID)
	})
	return r
}

func callAdmin(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func issue(t *testing.T, signer utils.AdminTokenSigner, adminID string) string {
	t.Helper()
	token, _, err := signer.Issue(adminID, time.Now())
	require.NoError(t, err)
	return token
}

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	w := callAdmin(newAuthRouter(), "Bearer "+issue(t, tokens, "ops@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ops@example.com", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	expiredSigner := tokens
	expiredSigner.Expiry = -time.Minute
	otherKey := tokens
	otherKey.Secret = "another-secret"
	otherIssuer := tokens
	otherIssuer.Issuer = "someone-else"

	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    tokens.Issuer,
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"expired", "Bearer " + issue(t, expiredSigner, "admin"), "Token has expired"},
		{"wrong signature", "Bearer " + issue(t, otherKey, "admin"), "Invalid token"},
		{"wrong issuer", "Bearer " + issue(t, otherIssuer, "admin"), "Invalid token"},
		{"hs512 with shared secret", "Bearer " + signClaims(t, jwt.SigningMethodHS512, valid), "Invalid token"},
		{"no expiry", "Bearer " + signClaims(t, jwt.SigningMethodHS256, noExpiry), "Invalid token"},
		{"missing subject", "Bearer " + issue(t, tokens, ""), "Invalid token claims"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := callAdmin(newAuthRouter(), tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}
