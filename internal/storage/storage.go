package storage

// Chest is a directory that backups are written into.
type Chest interface {
	// Path returns where filename is stored on disk.
	Path(filename string) string

	// WriteFile creates or truncates filename and writes contents into it.
	WriteFile(filename string, contents []byte) error

	// Ready returns an error if the directory is missing or not a directory.
	Ready() error
}
