package pdb

var (
	IDFromName = idFromName
	OldOrMmcif = oldOrMmcif
	GetHTTP    = getHTTP
)

const (
	OldFmt   = oldFmt
	MmcifFmt = mmcifFmt
)

// SetMirrors replaces the download sites with base+code+suffix pairs
// and returns a function that puts the old ones back.
func SetMirrors(m [][2]string) (restore func()) {
	old := mirrors
	mirrors = nil
	for _, x := range m {
		mirrors = append(mirrors, mirror{x[0], x[1]})
	}
	return func() { mirrors = old }
}
