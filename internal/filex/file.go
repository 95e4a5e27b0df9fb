// Package filex manages local preview copies of files staged for upload.
// A staged copy lives in a per-user temp directory until the upload is
// confirmed or the selection is discarded.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StagingDir returns the preview staging directory, creating it if needed.
func StagingDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "ludoan72-previews")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// StageCopy copies src into the staging directory under a fresh name and
// returns the staged path. The original file is left untouched.
func StageCopy(src string) (string, error) {
	dir, err := StagingDir()
	if err != nil {
		return "", err
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(dir, uuid.NewString()+filepath.Ext(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close %s: %w", dst, err)
	}

	return dst, nil
}

// Release removes a staged preview copy. Missing files are not an error so
// release is safe to call twice.
func Release(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
