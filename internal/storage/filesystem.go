package storage

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

type filesystem struct {
	root string
}

// NewFilesystem returns a Chest rooted at dir. The directory is expected to exist
// already and is never created.
func NewFilesystem(dir string) Chest {
	return &filesystem{
		root: dir,
	}
}

// Path joins root and filename with the platform separator. filename is used as-is,
// it is not cleaned or checked for separators or ".." elements.
func (fs *filesystem) Path(filename string) string {
	sep := string(os.PathSeparator)
	if strings.HasSuffix(fs.root, sep) {
		return fs.root + filename
	}
	return fs.root + sep + filename
}

func (fs *filesystem) WriteFile(filename string, contents []byte) (err error) {
	path := fs.Path(filename)

	fd, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "WriteFile")
	}
	defer func() {
		if closeErr := fd.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "WriteFile: close")
		}
		// don't leave a truncated backup around after a failed write
		if err != nil {
			os.Remove(path)
		}
	}()

	n, err := fd.Write(contents)
	if err != nil {
		return errors.Wrap(err, "WriteFile")
	}
	if n != len(contents) {
		return errors.Errorf("WriteFile: short write of %d/%d bytes", n, len(contents))
	}
	return nil
}

func (fs *filesystem) Ready() error {
	info, err := os.Stat(fs.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", fs.root)
	}
	return nil
}
