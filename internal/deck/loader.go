package deck

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var builtinFS embed.FS

// DefaultTheme is used when no theme is requested or loading fails.
const DefaultTheme = "classic"

// Load loads a theme by name.
// Search order: ~/.memory-match/themes/<name>.yaml -> ./themes/<name>.yaml ->
// built-in embedded themes.
func Load(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}

	filename := name + ".yaml"

	// Try user theme directory
	if userPath := userThemePath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if t, err := parse(data); err == nil {
				return t, nil
			}
		}
	}

	// Try local themes directory
	if data, err := os.ReadFile(filepath.Join("themes", filename)); err == nil {
		if t, err := parse(data); err == nil {
			return t, nil
		}
	}

	// Built-in themes
	data, err := builtinFS.ReadFile("themes/" + filename)
	if err != nil {
		return Theme{}, fmt.Errorf("deck: unknown theme %q", name)
	}
	t, err := parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("deck: built-in theme %q: %w", name, err)
	}
	return t, nil
}

// LoadFile loads a theme from an explicit YAML path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("deck: cannot read theme %s: %w", path, err)
	}
	t, err := parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("deck: cannot parse theme %s: %w", path, err)
	}
	return t, nil
}

// Builtin returns all embedded themes, sorted by name.
func Builtin() []Theme {
	var themes []Theme
	//nolint:errcheck // Embedded FS walk cannot fail
	fs.WalkDir(builtinFS, "themes", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return err
		}
		data, readErr := builtinFS.ReadFile(path)
		if readErr != nil {
			return nil
		}
		if t, parseErr := parse(data); parseErr == nil {
			themes = append(themes, t)
		}
		return nil
	})

	sort.Slice(themes, func(i, j int) bool {
		return themes[i].Name < themes[j].Name
	})
	return themes
}

func parse(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, err
	}
	if t.Name == "" {
		return Theme{}, fmt.Errorf("theme has no name")
	}
	return t, nil
}

// userThemePath returns the path to a user theme file, or empty if home is unavailable.
func userThemePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory-match", "themes", filename)
}
