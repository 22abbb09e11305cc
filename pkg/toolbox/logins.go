package toolbox

import (
	"fmt"
)

// LoginsParams contains parameters for RecentLogins.
type LoginsParams struct {
	// Count is the number of login records to fetch. Defaults to 50.
	Count int
	// OutputPath, when set, receives the records instead of the return value.
	OutputPath string
}

const defaultLoginCount = 50

// RecentLogins fetches the most recent login records from the host. The
// records are written to OutputPath when one is given, otherwise returned
// for the caller to print.
func (t *realToolbox) RecentLogins(params LoginsParams) (string, error) {
	if err := t.requireTool("last"); err != nil {
		return "", err
	}

	count := params.Count
	if count <= 0 {
		count = defaultLoginCount
	}

	t.logf("logins: fetching %d most recent records", count)

	records, err := t.deps.Inspector.RecentLogins(count)
	if err != nil {
		t.errorf("logins: %v", err)
		return "", fmt.Errorf("failed to read login records: %w", err)
	}

	if params.OutputPath != "" {
		if err := t.writeReport(params.OutputPath, records); err != nil {
			t.errorf("logins: %v", err)
			return "", err
		}
		t.logf("logins: wrote %d records to %s", count, params.OutputPath)
		return "", nil
	}

	return records, nil
}
