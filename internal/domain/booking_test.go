package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "status %s", s)
	}

	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("annullato").IsValid())
	assert.False(t, BookingStatus("NUOVO").IsValid())
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from   BookingStatus
		to     BookingStatus
		wantOK bool
	}{
		{StatusNew, StatusContacted, true},
		{StatusNew, StatusConfirmed, true},
		{StatusContacted, StatusContacted, true},
		{StatusContacted, StatusConfirmed, true},
		{StatusConfirmed, StatusConfirmed, true}, // повторное подтверждение не блокируется
		{StatusConfirmed, StatusContacted, false},
		{StatusConfirmed, StatusNew, false},
		{StatusNew, StatusNew, false},
		{StatusContacted, StatusNew, false},
		{StatusNew, BookingStatus("annullato"), false},
		{StatusContacted, BookingStatus(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestLicenseTypeIsValid(t *testing.T) {
	for _, lt := range AllLicenseTypes {
		assert.True(t, lt.IsValid(), "license %s", lt)
	}

	assert.False(t, LicenseType("C").IsValid())
	assert.False(t, LicenseType("am").IsValid())
	assert.False(t, LicenseType("").IsValid())
}

func TestMonthPeriodIsValid(t *testing.T) {
	assert.True(t, PeriodStartOfMonth.IsValid())
	assert.True(t, PeriodMidMonth.IsValid())
	assert.True(t, PeriodEndOfMonth.IsValid())
	assert.False(t, MonthPeriod("Meta mese").IsValid())
	assert.False(t, MonthPeriod("").IsValid())
}

func TestBookingPredicates(t *testing.T) {
	b := &Booking{Email: "mario@example.it", Status: StatusNew}
	assert.True(t, b.HasEmail())
	assert.False(t, b.HasExpiry())
	assert.False(t, b.IsConfirmed())

	expiry := date(2025, 6, 30)
	b.TheoryExpiry = &expiry
	b.Status = StatusConfirmed
	assert.True(t, b.HasExpiry())
	assert.True(t, b.IsConfirmed())
}
