package toolbox

import (
	"opskit/pkg/service"
)

// ServiceCheck reports whether the named service is active, using whichever
// service manager the host provides.
func (t *realToolbox) ServiceCheck(name string) (service.State, error) {
	t.logf("svc-check: querying %s", name)

	state, err := t.deps.Service.Status(name)
	if err != nil {
		t.errorf("svc-check: %v", err)
		return "", err
	}

	t.logf("svc-check: %s is %s", name, state)
	return state, nil
}
