package timezone

import "time"

// SystemTimezone is the single wall-clock zone the whole system schedules
// in. Instants are stored in UTC; every opening-hours string, day boundary
// and week boundary is interpreted in this zone.
const SystemTimezone = "Europe/Stockholm"

var systemLoc = mustLoad(SystemTimezone)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("timezone: cannot load " + name + ": " + err.Error())
	}
	return loc
}

func Location() *time.Location {
	return systemLoc
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Now() time.Time {
	return time.Now().In(systemLoc)
}
