package clientstore

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

const (
	// cookieMaxAge keeps stored values for one year.
	cookieMaxAge = 365 * 24 * 60 * 60
	// maxCookieBytes leaves room for the name and attributes within the 4 KiB browser limit.
	maxCookieBytes = 3800
)

// CookieOptions controls the attributes of cookies written by the store.
type CookieOptions struct {
	Domain string
	Secure bool
}

// CookieStore keeps values in base64url-encoded cookies on the shopper's browser.
// Writes are visible to later reads within the same request.
type CookieStore struct {
	c       *gin.Context
	opts    CookieOptions
	pending map[string]*string
}

var _ portsrepo.ClientStorage = (*CookieStore)(nil)

// New binds a store to one request.
func New(c *gin.Context, opts CookieOptions) *CookieStore {
	return &CookieStore{c: c, opts: opts, pending: map[string]*string{}}
}

// Get returns the decoded cookie value. Unreadable values count as absent.
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	raw, err := s.c.Cookie(key)
	if err != nil || raw == "" {
		return "", false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// Set writes value under key.
func (s *CookieStore) Set(key, value string) error {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	if len(key)+len(encoded) > maxCookieBytes {
		return fmt.Errorf("%w: value for %s is too large to store", apperrors.ErrValidation, key)
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, encoded, cookieMaxAge, "/", s.opts.Domain, s.opts.Secure, true)
	s.pending[key] = &value
	return nil
}

// Delete expires the cookie.
func (s *CookieStore) Delete(key string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, "", -1, "/", s.opts.Domain, s.opts.Secure, true)
	s.pending[key] = nil
}
