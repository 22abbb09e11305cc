package sysinfo

// DiskFree returns the filesystem usage table.
func (i *realInspector) DiskFree() (string, error) {
	return i.run("df", "-h")
}
