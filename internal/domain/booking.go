package domain

import "time"

// BookingStatus represents the administrative state of a booking request
type BookingStatus string

const (
	StatusNew       BookingStatus = "nuovo"
	StatusContacted BookingStatus = "contattato"
	StatusConfirmed BookingStatus = "confermato"
)

// AllStatuses список всех допустимых статусов заявки
var AllStatuses = []BookingStatus{
	StatusNew,
	StatusContacted,
	StatusConfirmed,
}

// IsValid returns true if the status is a member of the closed enumeration
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConfirmed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine allows moving to target.
// new and contacted may move to contacted or confirmed; confirmed is terminal,
// but a redundant re-confirm is tolerated (the admin UI does not offer it,
// the model simply does not hard-block it).
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	if !target.IsValid() {
		return false
	}

	switch s {
	case StatusNew, StatusContacted:
		return target == StatusContacted || target == StatusConfirmed
	case StatusConfirmed:
		return target == StatusConfirmed
	default:
		return false
	}
}

// LicenseType represents the driving license category the theory exam applies to
type LicenseType string

const (
	LicenseAM LicenseType = "AM"
	LicenseA1 LicenseType = "A1"
	LicenseB  LicenseType = "B"
)

// AllLicenseTypes список всех категорий прав
var AllLicenseTypes = []LicenseType{
	LicenseAM,
	LicenseA1,
	LicenseB,
}

// IsValid returns true if the license type is a member of the closed enumeration
func (t LicenseType) IsValid() bool {
	switch t {
	case LicenseAM, LicenseA1, LicenseB:
		return true
	default:
		return false
	}
}

// MonthPeriod represents the preferred part of the chosen month
type MonthPeriod string

const (
	PeriodStartOfMonth MonthPeriod = "Inizio mese"
	PeriodMidMonth     MonthPeriod = "Metà mese"
	PeriodEndOfMonth   MonthPeriod = "Fine mese"
)

// IsValid returns true if the period is a member of the closed enumeration
func (p MonthPeriod) IsValid() bool {
	switch p {
	case PeriodStartOfMonth, PeriodMidMonth, PeriodEndOfMonth:
		return true
	default:
		return false
	}
}

// Booking represents one theory-exam scheduling request
type Booking struct {
	ID              int64
	FullName        string
	Email           string
	Telefono        *string
	LicenseType     LicenseType
	PreferredMonth  string
	PreferredPeriod *MonthPeriod
	TheoryExpiry    *time.Time
	Note            *string
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasExpiry returns true if the theory certificate expiry date is known
func (b *Booking) HasExpiry() bool {
	return b.TheoryExpiry != nil
}

// HasEmail returns true if the booking carries a recipient address for
// the confirmation notification
func (b *Booking) HasEmail() bool {
	return b.Email != ""
}

// IsConfirmed returns true if the booking reached the terminal status
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter фильтр админской выборки заявок
type BookingsFilter struct {
	Month       *string        // Фильтр по выбранному месяцу (nil - все месяцы)
	LicenseType *LicenseType   // Фильтр по категории прав (nil - все категории)
	Status      *BookingStatus // Фильтр по статусу (nil - все статусы)
}

// BookingStats счётчики для шапки админской панели
type BookingStats struct {
	Total     int // Количество заявок в текущей (отфильтрованной) выборке
	Today     int // Заявки, созданные сегодня
	New       int // Заявки в статусе "nuovo"
	Confirmed int // Заявки в статусе "confermato"
}
