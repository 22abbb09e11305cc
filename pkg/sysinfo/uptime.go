package sysinfo

// Uptime returns the host uptime line.
func (i *realInspector) Uptime() (string, error) {
	return i.run("uptime")
}
