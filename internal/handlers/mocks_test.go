package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CurrentRates(ctx context.Context) *domain.RateTable {
	args := m.Called(ctx)
	return args.Get(0).(*domain.RateTable)
}

func (m *MockExchangeRateService) RefreshRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateStripePaymentIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentIntentResponse), args.Error(1)
}

func (m *MockPaymentService) CreatePayPalOrder(ctx context.Context, req dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayPalOrderResponse), args.Error(1)
}

func (m *MockPaymentService) CapturePayPalOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayPalOrderResponse), args.Error(1)
}

var _ portssvc.PaymentSvc = (*MockPaymentService)(nil)

// --- Mock RecaptchaService ---
type MockRecaptchaService struct {
	mock.Mock
}

func (m *MockRecaptchaService) Verify(ctx context.Context, req dto.VerifyRecaptchaRequest, remoteIP string) (*dto.VerifyRecaptchaResponse, error) {
	args := m.Called(ctx, req, remoteIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VerifyRecaptchaResponse), args.Error(1)
}

var _ portssvc.RecaptchaSvc = (*MockRecaptchaService)(nil)

// --- Mock SocialFeedService ---
type MockSocialFeedService struct {
	mock.Mock
}

func (m *MockSocialFeedService) InstagramFeed(ctx context.Context, limit int) (*dto.SocialFeedResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SocialFeedResponse), args.Error(1)
}

func (m *MockSocialFeedService) TikTokFeed(ctx context.Context, limit int) (*dto.SocialFeedResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SocialFeedResponse), args.Error(1)
}

var _ portssvc.SocialFeedSvc = (*MockSocialFeedService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Helpers ---

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() *domain.CurrencyCatalog {
	catalog, err := domain.NewCurrencyCatalog("USD", domain.DefaultCurrencies)
	if err != nil {
		panic(err)
	}
	return catalog
}

func testRateTable() *domain.RateTable {
	now := time.Now()
	return &domain.RateTable{
		Base:      "USD",
		Rates:     map[string]decimal.Decimal{"USD": d("1"), "EUR": d("0.5"), "JPY": d("150")},
		FetchedAt: now,
		ExpiresAt: now.Add(time.Hour),
		Source:    "test",
	}
}

var testTokens = utils.AdminTokenSigner{Secret: testJWTSecret, Issuer: "storefront-test", Expiry: time.Hour}

// generateTestToken creates a signed admin JWT for testing.
func generateTestToken(adminID string, expiresIn time.Duration) string {
	signer := testTokens
	signer.Expiry = expiresIn
	signed, _, err := signer.Issue(adminID, time.Now())
	if err != nil {
		panic(err)
	}
	return signed
}

// cookieJar replays cookies between recorded responses the way a browser would.
type cookieJar map[string]*http.Cookie

func (j cookieJar) update(w *httptest.ResponseRecorder) {
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(j, ck.Name)
			continue
		}
		j[ck.Name] = ck
	}
}

func (j cookieJar) apply(req *http.Request) {
	for _, ck := range j {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
}
