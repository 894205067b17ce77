package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerEntryRepository ---
type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if fn, ok := args.Get(0).(func(context.Context, domain.LedgerEntry) *domain.LedgerEntry); ok {
		return fn(ctx, entry), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) CountLedgerEntries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAggregateStats(ctx context.Context, todayStart time.Time) (*domain.AggregateStats, error) {
	args := m.Called(ctx, todayStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AggregateStats), args.Error(1)
}

func (m *MockReportingRepository) GetWindowTotals(ctx context.Context, from, to time.Time) (*domain.WindowTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WindowTotals), args.Error(1)
}

// --- Mock NotificationSender ---
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) Send(ctx context.Context, phoneNumber, templateName string, params []string) error {
	args := m.Called(ctx, phoneNumber, templateName, params)
	return args.Error(0)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEntryRecorded(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
