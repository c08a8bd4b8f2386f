package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// DefaultFileMode is applied to index files written by the repository.
const DefaultFileMode os.FileMode = 0o644

// writeFileAtomic replaces filename with data so readers observe either the
// old or the new contents, never a partial write.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	// atomic.WriteFile keeps the mode of a replaced file but creates new
	// files with the temp file's 0600.
	if err := os.Chmod(filename, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", filename, err)
	}
	return nil
}
