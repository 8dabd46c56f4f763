// Package holiday answers public-holiday questions for Panama.
package holiday

import (
	"time"

	"routecast/internal/domain/service"
)

type monthDay struct {
	month time.Month
	day   int
}

var fixedHolidays = map[monthDay]bool{
	{time.January, 1}:   true, // Año Nuevo
	{time.January, 9}:   true, // Día de los Mártires
	{time.May, 1}:       true,
	{time.November, 3}:  true, // Separación de Colombia
	{time.November, 4}:  true,
	{time.November, 5}:  true,
	{time.November, 10}: true, // Grito de La Villa
	{time.November, 28}: true,
	{time.December, 8}:  true,
	{time.December, 20}: true,
	{time.December, 24}: true,
	{time.December, 25}: true,
	{time.December, 31}: true,
}

// variableHolidays holds Carnival Monday/Tuesday and Good Friday per year.
// TODO: derive these from the Easter date so years after 2026 are covered.
var variableHolidays = map[int]map[monthDay]bool{
	2024: {{time.February, 12}: true, {time.February, 13}: true, {time.March, 29}: true},
	2025: {{time.March, 3}: true, {time.March, 4}: true, {time.April, 18}: true},
	2026: {{time.February, 16}: true, {time.February, 17}: true, {time.April, 3}: true},
}

// PanamaCalendar implements service.HolidayCalendar using the calendar date of t in its own location.
type PanamaCalendar struct{}

// NewPanamaCalendar returns the calendar as a HolidayCalendar.
func NewPanamaCalendar() service.HolidayCalendar {
	return PanamaCalendar{}
}

func (PanamaCalendar) IsHoliday(t time.Time) bool {
	year, month, day := t.Date()
	key := monthDay{month, day}

	return fixedHolidays[key] || variableHolidays[year][key]
}
