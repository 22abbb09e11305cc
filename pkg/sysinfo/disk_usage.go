package sysinfo

// DiskUsage returns per-child disk usage of dir in kilobytes, one directory
// per line in "<size-kb>\t<path>" form including the directory itself.
func (i *realInspector) DiskUsage(dir string) (string, error) {
	return i.run("du", "-k", "-d", "1", dir)
}
