package appointment

import "time"

// The clinic runs in the server's local time; there is no per-tenant
// timezone.

func parseClinicDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}
