package clock

// Time unit conversions used throughout the package.
const (
	SecsPerMinute = 60
	SecsPerHour   = 3600
	SecsPerDay    = 86400
)

// monthLength holds the day count of each month in a non-leap year.
// February's leap-year adjustment is applied inside Make and Break.
var monthLength = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DateTime is a broken-down calendar value equivalent to a Unix timestamp.
// Year is an offset from 1970, not a full year number. Weekday runs 1-7
// with 1 = Sunday and is output-only: Make ignores it.
type DateTime struct {
	Second  int // 0-59
	Minute  int // 0-59
	Hour    int // 0-23
	Weekday int // 1-7, 1 = Sunday
	Day     int // day of month, 1-31
	Month   int // 1-12
	Year    int // years since 1970
}

// WeekdayName returns the short English name for the Weekday field, or ""
// when the field is out of range.
func (dt *DateTime) WeekdayName() string {
	if dt.Weekday < 1 || dt.Weekday > 7 {
		return ""
	}
	return weekdayNames[dt.Weekday-1]
}

// MonthName returns the short English name for the Month field, or "" when
// the field is out of range.
func (dt *DateTime) MonthName() string {
	if dt.Month < 1 || dt.Month > 12 {
		return ""
	}
	return monthNames[dt.Month-1]
}

// IsLeap reports whether year (a full Gregorian year number) is a leap year:
// divisible by 4 and not by 100, unless divisible by 400.
func IsLeap(year uint32) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// Make converts a broken-down calendar value to a Unix timestamp. Fields are
// taken as-is with no validation or normalization; out-of-range values yield
// a well-defined but not physically meaningful result. The Weekday field is
// ignored.
func Make(dt *DateTime) uint32 {
	ts := uint32(dt.Year) * 365 * SecsPerDay

	// One extra day for every leap year fully elapsed since 1970.
	for y := 0; y < dt.Year; y++ {
		if IsLeap(uint32(1970 + y)) {
			ts += SecsPerDay
		}
	}

	// Whole months elapsed this year. Months are 1-based here; February of
	// a leap year contributes 29 days.
	for m := 1; m < dt.Month; m++ {
		if m == 2 && IsLeap(uint32(1970+dt.Year)) {
			ts += 29 * SecsPerDay
		} else {
			ts += uint32(monthLength[m-1]) * SecsPerDay
		}
	}

	ts += uint32(dt.Day-1) * SecsPerDay
	ts += uint32(dt.Hour) * SecsPerHour
	ts += uint32(dt.Minute) * SecsPerMinute
	ts += uint32(dt.Second)

	return ts
}

// Break converts a Unix timestamp to a broken-down calendar value, filling
// every field of dt including the weekday.
func Break(ts uint32, dt *DateTime) {
	dt.Second = int(ts % 60)
	ts /= 60 // minutes
	dt.Minute = int(ts % 60)
	ts /= 60 // hours
	dt.Hour = int(ts % 24)
	ts /= 24 // whole days since 1970-01-01

	// 1970-01-01 was a Thursday; the +4 offset makes Sunday day 1.
	dt.Weekday = int((ts+4)%7) + 1

	year := 0
	days := uint32(0)
	for {
		length := uint32(365)
		if IsLeap(uint32(1970 + year)) {
			length = 366
		}
		if days+length > ts {
			break
		}
		days += length
		year++
	}
	dt.Year = year
	ts -= days // day of year, starting at 0

	month := 0
	for ; month < 12; month++ {
		length := uint32(monthLength[month])
		if month == 1 && IsLeap(uint32(1970+year)) {
			length = 29
		}
		if ts < length {
			break
		}
		ts -= length
	}
	dt.Month = month + 1
	dt.Day = int(ts) + 1
}
