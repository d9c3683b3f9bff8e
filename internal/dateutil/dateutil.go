// Package dateutil formats dates and computes ages.
package dateutil

import "time"

const dateLayout = "2006-01-02"

// FormatDate renders t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// AgeFromBirthDate returns completed years between birth and today.
func AgeFromBirthDate(birth time.Time) int {
	return AgeAt(birth, time.Now())
}

// AgeAt returns completed years between birth and now. The count drops by
// one while now's month/day is still before the birthday.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
