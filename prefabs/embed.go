package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is checked for an edited copy of a prefab before the embedded one.
// Empty disables the override.
var Dir = "prefabs"

// Load returns a prefab file by name. A leading "prefabs/" is accepted.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if Dir != "" {
		if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	return fs.ReadFile(PrefabsFS, clean)
}

// Names lists the embedded prefab files.
func Names() []string {
	names, _ := fs.Glob(PrefabsFS, "*.yaml")
	return names
}

func cleanPrefabPath(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	return strings.TrimPrefix(s, "prefabs/")
}
