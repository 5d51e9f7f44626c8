package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns the raw level file, preferring a copy on disk under levels/
// so layouts can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

// LoadScript returns a level script by name, with the same disk override as
// Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(ScriptsFS, clean)
}

// FileName returns the file name of the level at index.
func FileName(index int) string {
	return fmt.Sprintf("level_%02d.json", index)
}

// Count returns the number of embedded levels. Levels are numbered from 0
// without gaps.
func Count() int {
	names, err := fs.Glob(LevelsFS, "level_*.json")
	if err != nil {
		return 0
	}
	sort.Strings(names)
	n := 0
	for _, name := range names {
		if name != FileName(n) {
			break
		}
		n++
	}
	return n
}

func cleanLevelPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	return path.Clean(s)
}

func cleanScriptPath(p string) string {
	s := cleanLevelPath(p)
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
