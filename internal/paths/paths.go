package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	OutputDirName = "images"
	DirPerm       = 0755
	FilePerm      = 0644
)

// IconFileName returns the file name for an icon of the given edge length,
// e.g. "icon-192.png".
func IconFileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// IconPath joins dir and the icon file name for size.
func IconPath(dir string, size int) string {
	return filepath.Join(dir, IconFileName(size))
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
