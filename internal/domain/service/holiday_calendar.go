package service

import "time"

// HolidayCalendar answers whether a date is a public holiday.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}
