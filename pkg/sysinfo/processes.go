package sysinfo

// Processes returns the process table sorted by CPU usage descending.
func (i *realInspector) Processes() (string, error) {
	return i.run("ps", "aux", "--sort=-%cpu")
}
