package sysinfo

import "strconv"

// RecentLogins returns the count most recent login records.
func (i *realInspector) RecentLogins(count int) (string, error) {
	return i.run("last", "-n", strconv.Itoa(count))
}
