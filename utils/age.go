package utils

import "time"

// AgeFromDOB derives a whole-year age from an ISO date of birth. Returns
// (0, false) when the date is empty or unparseable.
func AgeFromDOB(dob string, now time.Time) (int, bool) {
	if dob == "" {
		return 0, false
	}
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		if birth, err = time.Parse(time.RFC3339, dob); err != nil {
			return 0, false
		}
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}
