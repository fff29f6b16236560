package calendar

import (
	"time"

	"github.com/cyp0633/libholiday/holiday"
	"github.com/stretchr/testify/mock"
)

// MockProvider implements provider.CountyProvider for testing
type MockProvider struct {
	mock.Mock
}

// Holidays implements provider.Provider
func (m *MockProvider) Holidays(year int) []holiday.Holiday {
	args := m.Called(year)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]holiday.Holiday)
}

// Counties implements provider.CountyProvider
func (m *MockProvider) Counties() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

// --- Helper methods for creating test data ---

// newMockHoliday creates a global public holiday on the given date
func newMockHoliday(code holiday.CountryCode, month time.Month, day int, name string) holiday.Holiday {
	return holiday.Fixed(2022, month, day, name, name, code).Build()
}
