package service

import (
	"context"
	"fmt"
	"time"

	"shop-admin-api/internal/cache"
	"shop-admin-api/internal/calendar"
	"shop-admin-api/internal/chart"
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/pkg/apperror"
	"shop-admin-api/pkg/logger"

	"go.uber.org/zap"
)

// MaxChartMonths bounds the ?months= override
const MaxChartMonths = 24

type TransactionService interface {
	List(ctx context.Context, page int) (repository.Paginated[model.Transaction], error)
	// Chart returns the successful revenue of the last months local months, oldest first.
	// months == 0 selects the configured default.
	Chart(ctx context.Context, months int) ([]chart.Bucket, error)
	// RefreshChart recomputes the default chart and stores it in the cache
	RefreshChart(ctx context.Context) error
}

// ChartOptions configures the chart. A CacheTTL of zero disables caching, so every
// request sees transactions committed just before it.
type ChartOptions struct {
	Months   int
	CacheTTL time.Duration
}

type transactionService struct {
	transactions repository.TransactionRepository
	cal          calendar.Calendar
	cache        cache.ChartCache
	opts         ChartOptions
	now          func() time.Time
}

func NewTransactionService(transactions repository.TransactionRepository, cal calendar.Calendar,
	chartCache cache.ChartCache, opts ChartOptions, now func() time.Time) TransactionService {
	if now == nil {
		now = time.Now
	}
	if opts.Months <= 0 {
		opts.Months = 12
	}
	return &transactionService{
		transactions: transactions,
		cal:          cal,
		cache:        chartCache,
		opts:         opts,
		now:          now,
	}
}

func (s *transactionService) List(ctx context.Context, page int) (repository.Paginated[model.Transaction], error) {
	res, err := s.transactions.List(ctx, repository.NewPage(page))
	if err != nil {
		return res, apperror.Persistence(err)
	}
	return res, nil
}

func (s *transactionService) Chart(ctx context.Context, months int) ([]chart.Bucket, error) {
	if months == 0 {
		months = s.opts.Months
	}
	if months < 1 || months > MaxChartMonths {
		return nil, apperror.Field("months", fmt.Sprintf("The months field must be between 1 and %d.", MaxChartMonths))
	}

	now := s.now()
	key := s.cacheKey(now, months)
	if s.cached() {
		buckets, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.FromContext(ctx).Warn("chart cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return buckets, nil
		}
	}

	buckets, err := s.compute(ctx, now, months)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, buckets)
	return buckets, nil
}

func (s *transactionService) RefreshChart(ctx context.Context) error {
	if !s.cached() {
		return nil
	}
	now := s.now()
	buckets, err := s.compute(ctx, now, s.opts.Months)
	if err != nil {
		return err
	}
	s.store(ctx, s.cacheKey(now, s.opts.Months), buckets)
	return nil
}

func (s *transactionService) compute(ctx context.Context, now time.Time, months int) ([]chart.Bucket, error) {
	since, err := chart.WindowStart(s.cal, now, months)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	txs, err := s.transactions.FindByStatusSince(ctx, model.TransactionSuccessful, since)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	records := make([]chart.Record, len(txs))
	for i, tx := range txs {
		records[i] = chart.Record{CreatedAt: tx.CreatedAt, Amount: tx.Amount}
	}
	buckets, err := chart.Aggregate(s.cal, now, months, records)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	return buckets, nil
}

func (s *transactionService) cached() bool {
	return s.cache != nil && s.opts.CacheTTL > 0
}

func (s *transactionService) store(ctx context.Context, key string, buckets []chart.Bucket) {
	if !s.cached() {
		return
	}
	if err := s.cache.Set(ctx, key, buckets, s.opts.CacheTTL); err != nil {
		logger.FromContext(ctx).Warn("chart cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// cacheKey changes with the current local month so a cached chart never spans a month boundary
func (s *transactionService) cacheKey(now time.Time, months int) string {
	k := s.cal.MonthOf(now)
	return fmt.Sprintf("chart:%d:%d-%02d", months, k.Year, k.Month)
}
