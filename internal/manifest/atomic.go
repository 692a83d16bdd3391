package manifest

import (
	"os"
	"path/filepath"
)

// writeFileAtomic stages data in a temporary file next to path, fsyncs it,
// and renames it into place. A crash mid-write leaves the previous manifest
// intact; concurrent readers never observe a partial file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	write := func() error {
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		if err := f.Chmod(perm); err != nil {
			f.Close()
			return err
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		return os.Rename(tmp, path)
	}
	if err := write(); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
