package projects

import (
	"os"
	"path/filepath"

	"github.com/bamgstudio/portfolio/pkg/constants"
	"github.com/bamgstudio/portfolio/pkg/errors"
)

// Dir is one project directory found during a scan.
type Dir struct {
	Name string // directory name, e.g. "01-proxy"
	Path string // full path under the scanned root
}

// Scan returns every immediate child of root that is a directory, sorted
// ascending by name. Non-directory entries are excluded.
func Scan(root string) ([]Dir, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("project root", root)
		}
		return nil, errors.WrapIO("scan", root, err)
	}

	// os.ReadDir already sorts entries by filename.
	var dirs []Dir
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirs = append(dirs, Dir{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		})
	}

	return dirs, nil
}

// ReadReadme reads the README.md directly inside dir. A missing README is
// reported as ok == false with a nil error; any other read failure is an
// IOError.
func ReadReadme(dir string) (content string, ok bool, err error) {
	path := filepath.Join(dir, constants.ReadmeFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.WrapIO("read", path, err)
	}
	return string(data), true, nil
}
