package get_available_months

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	today := time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

	t.Run("without expiry only months are returned", func(t *testing.T) {
		uc := newTestUseCase(today)

		resp, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		assert.Len(t, resp.Months, 6)
		assert.Equal(t, "Febbraio 2025", resp.Months[0])
		assert.Nil(t, resp.UrgentMonth)
		assert.Nil(t, resp.RecommendedMonth)
	})

	t.Run("imminent expiry marks first month urgent", func(t *testing.T) {
		uc := newTestUseCase(today)
		expiry := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

		resp, err := uc.Execute(context.Background(), &Request{TheoryExpiry: &expiry})
		require.NoError(t, err)

		require.NotNil(t, resp.UrgentMonth)
		assert.Equal(t, resp.Months[0], *resp.UrgentMonth)
		assert.Equal(t, "Febbraio 2025", *resp.UrgentMonth)
	})

	t.Run("distant expiry yields recommendation without urgency", func(t *testing.T) {
		uc := newTestUseCase(today)
		expiry := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

		resp, err := uc.Execute(context.Background(), &Request{TheoryExpiry: &expiry})
		require.NoError(t, err)

		assert.Nil(t, resp.UrgentMonth)
		require.NotNil(t, resp.RecommendedMonth)
		assert.Equal(t, "Giugno 2025", *resp.RecommendedMonth)
	})

	t.Run("both annotations computed independently", func(t *testing.T) {
		uc := newTestUseCase(today)
		expiry := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

		resp, err := uc.Execute(context.Background(), &Request{TheoryExpiry: &expiry})
		require.NoError(t, err)

		require.NotNil(t, resp.UrgentMonth)
		require.NotNil(t, resp.RecommendedMonth)
		assert.Equal(t, "Febbraio 2025", *resp.UrgentMonth)
		assert.Equal(t, "Gennaio 2025", *resp.RecommendedMonth)
	})

	t.Run("repeated calls are identical", func(t *testing.T) {
		uc := newTestUseCase(today)

		first, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
