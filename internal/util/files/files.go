// Package files holds the small file operations shared by the update flow.
package files

import (
	"io"
	"os"
	"path/filepath"
)

// Exists reports whether path exists. Errors other than not-exist count as existing so
// callers never overwrite something they could not inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// Copy copies src to dst, truncating dst. The source file mode is preserved.
func Copy(src, dst string) error {
	return copyWithFlags(src, dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// CopyExclusive copies src to dst and fails with an os.ErrExist error if dst exists.
func CopyExclusive(src, dst string) error {
	return copyWithFlags(src, dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
}

func copyWithFlags(src, dst string, flag int) (err error) {
	// #nosec G304 -- src is a resolved project path.
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	// #nosec G304 -- dst is a resolved project path.
	out, err := os.OpenFile(dst, flag, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// WriteAtomic writes data next to path and renames it into place.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
