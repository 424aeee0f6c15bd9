package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsageStore struct {
	usernames []string
	counts    map[string]int
}

func (f *fakeUsageStore) LogUsage(ctx context.Context, username string) error {
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	if f.counts[username] == 0 {
		f.usernames = append(f.usernames, username)
	}
	f.counts[username]++
	return nil
}

func (f *fakeUsageStore) ListUsernames(ctx context.Context) ([]string, error) {
	return f.usernames, nil
}

func (f *fakeUsageStore) UsageMetrics(ctx context.Context) (int, int, error) {
	total := 0
	for _, c := range f.counts {
		total += c
	}
	return len(f.counts), total, nil
}

func TestApplicationMetricsAggregatesUsage(t *testing.T) {
	store := &fakeUsageStore{}
	for i := 0; i < 3; i++ {
		require.NoError(t, store.LogUsage(context.Background(), "ana"))
	}
	require.NoError(t, store.LogUsage(context.Background(), "bob"))

	svc := NewUserService(store)

	metrics, err := svc.ApplicationMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.NumUsers)
	assert.Equal(t, 4, metrics.TotalUses)
}

func TestApplicationMetricsEmptyLog(t *testing.T) {
	svc := NewUserService(&fakeUsageStore{})

	metrics, err := svc.ApplicationMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.NumUsers)
	assert.Equal(t, 0, metrics.TotalUses)
}
