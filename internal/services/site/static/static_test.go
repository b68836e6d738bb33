package static

import (
	"io/fs"
	"testing"
)

func TestFSContainsSiteAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"site.css", "site.js", "images/lazy-e-logo.svg"} {
		info, err := fs.Stat(FS, name)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}
