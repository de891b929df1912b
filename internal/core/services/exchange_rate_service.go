package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// errEmptyRates is returned when the provider answers without any usable rate.
var errEmptyRates = errors.New("provider returned no usable rates")

// ExchangeRateService holds the rate table in effect and keeps it fresh.
// The table is swapped as a whole, so readers never see a partial update.
type ExchangeRateService struct {
	BaseService
	provider      gateways.RatesProvider
	repo          portsrepo.ExchangeRateRepositoryFacade
	base          string
	ttl           time.Duration
	checkInterval time.Duration
	now           func() time.Time

	// lock guards table; refreshLock serialises provider calls
	lock        sync.RWMutex
	table       *domain.RateTable
	refreshLock sync.Mutex
}

// ExchangeRateServiceOption configures an ExchangeRateService.
type ExchangeRateServiceOption func(*ExchangeRateService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.now = now
	}
}

// WithCheckInterval sets how often Run checks the table for expiry.
func WithCheckInterval(d time.Duration) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if d > 0 {
			s.checkInterval = d
		}
	}
}

// NewExchangeRateService creates the service with the fallback table in effect.
func NewExchangeRateService(
	provider gateways.RatesProvider,
	repo portsrepo.ExchangeRateRepositoryFacade,
	baseCurrency string,
	ttl time.Duration,
	opts ...ExchangeRateServiceOption,
) *ExchangeRateService {
	s := &ExchangeRateService{
		provider:      provider,
		repo:          repo,
		base:          baseCurrency,
		ttl:           ttl,
		checkInterval: 15 * time.Minute,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.table = domain.FallbackRateTable(baseCurrency, s.now())
	return s
}

var (
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.RateRefresherSvc      = (*ExchangeRateService)(nil)
)

// CurrentRates returns the table in effect.
func (s *ExchangeRateService) CurrentRates(_ context.Context) *domain.RateTable {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.table
}

func (s *ExchangeRateService) swap(table *domain.RateTable) {
	s.lock.Lock()
	s.table = table
	s.lock.Unlock()
}

// RefreshRates fetches a new table, swaps it in and persists it as a snapshot.
// On failure the previous table stays in effect.
func (s *ExchangeRateService) RefreshRates(ctx context.Context) (*domain.RateTable, error) {
	s.refreshLock.Lock()
	defer s.refreshLock.Unlock()

	start := s.now()
	rates, providerUpdated, err := s.provider.LatestRates(ctx, s.base)
	metrics.ObserveUpstream(s.provider.Name(), time.Since(start), err)
	if err == nil {
		rates, err = s.sanitize(rates)
	}
	if err != nil {
		metrics.ObserveRateRefresh(time.Time{}, err)
		s.LogError(ctx, err, "Failed to refresh exchange rates", slog.String("provider", s.provider.Name()))
		return nil, apperrors.NewUpstreamError(s.provider.Name(), err)
	}

	now := s.now()
	table := &domain.RateTable{
		SnapshotID: uuid.NewString(),
		Base:       s.base,
		Rates:      rates,
		FetchedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
		Source:     s.provider.Name(),
	}
	s.swap(table)
	metrics.ObserveRateRefresh(table.FetchedAt, nil)
	s.LogInfo(ctx, "Exchange rates refreshed",
		slog.Int("currencies", len(rates)),
		slog.Time("provider_updated_at", providerUpdated),
		slog.Time("expires_at", table.ExpiresAt))

	// A failed write only costs a provider call on the next restart.
	if err := s.repo.SaveSnapshot(ctx, *table); err != nil {
		s.LogError(ctx, err, "Failed to persist exchange rate snapshot", slog.String("snapshot_id", table.SnapshotID))
	}
	return table, nil
}

// sanitize drops malformed codes and non-positive rates and pins the base to 1.
func (s *ExchangeRateService) sanitize(in map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(in)+1)
	for code, rate := range in {
		code = strings.ToUpper(code)
		if len(code) != 3 || !rate.IsPositive() || code == s.base {
			continue
		}
		out[code] = rate
	}
	if len(out) == 0 {
		return nil, errEmptyRates
	}
	out[s.base] = decimal.NewFromInt(1)
	return out, nil
}

// Load installs the initial table. A persisted snapshot that has not expired
// is reused without calling the provider.
func (s *ExchangeRateService) Load(ctx context.Context) {
	snapshot, err := s.repo.FindLatestSnapshot(ctx, s.base)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load exchange rate snapshot")
	}
	if snapshot.IsEmpty() {
		snapshot = nil
	}

	if snapshot != nil && !snapshot.IsExpired(s.now()) {
		s.swap(snapshot)
		s.LogInfo(ctx, "Using persisted exchange rates",
			slog.String("snapshot_id", snapshot.SnapshotID),
			slog.Time("expires_at", snapshot.ExpiresAt))
		return
	}

	if _, err := s.RefreshRates(ctx); err == nil {
		return
	}

	if snapshot != nil {
		s.swap(snapshot)
		s.LogWarn(ctx, "Using expired exchange rate snapshot",
			slog.String("snapshot_id", snapshot.SnapshotID),
			slog.Time("fetched_at", snapshot.FetchedAt))
		return
	}
	s.LogWarn(ctx, "Using fallback exchange rates", slog.String("base", s.base))
}

// Run refreshes the table whenever it has expired. It checks immediately and
// then every check interval, and returns when ctx is cancelled.
func (s *ExchangeRateService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	s.LogInfo(ctx, "Starting exchange rate refresher", slog.Duration("check_interval", s.checkInterval))
	for {
		select {
		case <-ctx.Done():
			s.LogInfo(ctx, "Stopping exchange rate refresher")
			return
		case <-firstTick:
			s.refreshIfExpired(ctx)
		case <-ticker.C:
			s.refreshIfExpired(ctx)
		}
	}
}

func (s *ExchangeRateService) refreshIfExpired(ctx context.Context) {
	if !s.CurrentRates(ctx).IsExpired(s.now()) {
		return
	}
	if _, err := s.RefreshRates(ctx); err != nil {
		// keep serving the current table and try again on the next tick
		s.LogDebug(ctx, "Scheduled refresh failed", slog.String("error", err.Error()))
	}
}
