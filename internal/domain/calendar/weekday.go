package calendar

import "time"

// Weekday labels as stored in the class timetable.
var weekdayLabels = [...]string{
	time.Sunday:    "일요일",
	time.Monday:    "월요일",
	time.Tuesday:   "화요일",
	time.Wednesday: "수요일",
	time.Thursday:  "목요일",
	time.Friday:    "금요일",
	time.Saturday:  "토요일",
}

func DayOfWeek(date time.Time) string {
	return weekdayLabels[date.Weekday()]
}
