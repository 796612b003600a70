package log

import (
	"os"
	"strings"
	"time"

	"github.com/kinotv/kino/filesystem"
	"github.com/spf13/afero"
)

// Retention is how long daily log files are kept.
const Retention = 14 * 24 * time.Hour

// Prune removes log files in dir last modified before now minus maxAge.
// It returns the number of files removed.
func Prune(dir string, maxAge time.Duration) int {
	var removed int
	deadline := time.Now().Add(-maxAge)

	_ = afero.Walk(filesystem.API(), dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(info.Name(), ".log") {
			return nil
		}
		if info.ModTime().Before(deadline) && filesystem.API().Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed
}
