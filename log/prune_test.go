package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kinotv/kino/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestPrune(t *testing.T) {
	Convey("Given old and fresh log files", t, func() {
		fs := filesystem.API()
		dir := "/prune-test"
		old := filepath.Join(dir, "2020-01-01.log")
		fresh := filepath.Join(dir, "today.log")
		other := filepath.Join(dir, "notes.txt")

		So(fs.MkdirAll(dir, 0o755), ShouldBeNil)
		for _, p := range []string{old, fresh, other} {
			So(afero.WriteFile(fs, p, []byte("x"), 0o644), ShouldBeNil)
		}
		past := time.Now().Add(-30 * 24 * time.Hour)
		So(fs.Chtimes(old, past, past), ShouldBeNil)
		So(fs.Chtimes(other, past, past), ShouldBeNil)

		Convey("Only expired log files should be removed", func() {
			So(Prune(dir, Retention), ShouldEqual, 1)

			exists, _ := afero.Exists(fs, old)
			So(exists, ShouldBeFalse)
			exists, _ = afero.Exists(fs, fresh)
			So(exists, ShouldBeTrue)
			exists, _ = afero.Exists(fs, other)
			So(exists, ShouldBeTrue)
		})
	})
}
