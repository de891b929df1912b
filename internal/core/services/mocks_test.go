package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock RatesProvider ---
type MockRatesProvider struct {
	mock.Mock
}

func (m *MockRatesProvider) LatestRates(ctx context.Context, base string) (map[string]decimal.Decimal, time.Time, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, time.Time{}, args.Error(2)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockRatesProvider) Name() string {
	return "mock-rates"
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestSnapshot(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// --- Mock StripeGateway ---
type MockStripeGateway struct {
	mock.Mock
}

func (m *MockStripeGateway) CreatePaymentIntent(ctx context.Context, params gateways.StripePaymentIntentParams) (*dto.PaymentIntentResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentIntentResponse), args.Error(1)
}

// --- Mock PayPalGateway ---
type MockPayPalGateway struct {
	mock.Mock
}

func (m *MockPayPalGateway) CreateOrder(ctx context.Context, params gateways.PayPalOrderParams) (*dto.PayPalOrderResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayPalOrderResponse), args.Error(1)
}

func (m *MockPayPalGateway) CaptureOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayPalOrderResponse), args.Error(1)
}

// --- Mock RecaptchaGateway ---
type MockRecaptchaGateway struct {
	mock.Mock
}

func (m *MockRecaptchaGateway) SiteVerify(ctx context.Context, token, remoteIP string) (*dto.VerifyRecaptchaResponse, error) {
	args := m.Called(ctx, token, remoteIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VerifyRecaptchaResponse), args.Error(1)
}

// --- Mock SocialGateway ---
type MockSocialGateway struct {
	mock.Mock
}

func (m *MockSocialGateway) RecentPosts(ctx context.Context, limit int) ([]dto.SocialPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SocialPost), args.Error(1)
}

// memoryStore is a ClientStorage backed by a map.
type memoryStore struct {
	values map[string]string
	failOn string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *memoryStore) Set(key, value string) error {
	if key == s.failOn {
		return assert.AnError
	}
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(key string) {
	delete(s.values, key)
}

// fixedRates is an ExchangeRateReaderSvc with a constant table.
type fixedRates struct {
	table *domain.RateTable
}

func (f fixedRates) CurrentRates(context.Context) *domain.RateTable {
	return f.table
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() *domain.CurrencyCatalog {
	catalog, err := domain.NewCurrencyCatalog("USD", domain.DefaultCurrencies)
	if err != nil {
		panic(err)
	}
	return catalog
}

