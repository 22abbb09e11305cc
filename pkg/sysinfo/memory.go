package sysinfo

// Memory returns the memory usage table.
func (i *realInspector) Memory() (string, error) {
	return i.run("free", "-h")
}
