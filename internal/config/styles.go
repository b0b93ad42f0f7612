package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inkwave/inkwave/internal/binding"
)

// Style is a named generation preset: the checkpoint to load and the
// sampler parameters to use with it.
type Style struct {
	Name           string  `yaml:"name"`
	Checkpoint     string  `yaml:"checkpoint"`
	Sampler        string  `yaml:"sampler"`
	CFGScale       float64 `yaml:"cfg_scale"`
	Steps          int     `yaml:"steps"`
	NegativePrompt string  `yaml:"negative_prompt"`

	// Filename is the preset file this style was loaded from, empty for the
	// built-in default.
	Filename string `yaml:"-"`
}

// DefaultStyle is used when no preset files are available.
func DefaultStyle() *Style {
	return &Style{
		Name:     "Default",
		Sampler:  "dpmpp_2m",
		CFGScale: 7.0,
		Steps:    20,
	}
}

// StyleList holds the loaded style presets and notifies the UI when the set
// changes.
type StyleList struct {
	styles []*Style

	// Changed fires after the list is reloaded or a style is saved.
	Changed *binding.Signal[struct{}]
}

// NewStyleList creates a list containing only the built-in default style.
func NewStyleList() *StyleList {
	return &StyleList{
		styles:  []*Style{DefaultStyle()},
		Changed: binding.NewSignal[struct{}](),
	}
}

// All returns the styles in display order.
func (sl *StyleList) All() []*Style {
	result := make([]*Style, len(sl.styles))
	copy(result, sl.styles)
	return result
}

// Default returns the first style; the list is never empty.
func (sl *StyleList) Default() *Style {
	return sl.styles[0]
}

// FindByName returns the style with the given name.
func (sl *StyleList) FindByName(name string) (*Style, bool) {
	for _, style := range sl.styles {
		if style.Name == name {
			return style, true
		}
	}
	return nil, false
}

// LoadDirectory replaces the list with the presets found in dir, sorted by
// name, falling back to the built-in default when dir is empty or holds no
// presets. Unreadable files are skipped with a log message.
func (sl *StyleList) LoadDirectory(dir string) error {
	if dir == "" {
		sl.styles = []*Style{DefaultStyle()}
		return sl.Changed.Emit(struct{}{})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("styles: read directory %s: %w", dir, err)
	}

	var styles []*Style
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		style, err := loadStyleFile(path)
		if err != nil {
			log.Printf("styles: skipping %s: %v", path, err)
			continue
		}
		styles = append(styles, style)
	}

	sort.Slice(styles, func(i, j int) bool { return styles[i].Name < styles[j].Name })
	if len(styles) == 0 {
		styles = []*Style{DefaultStyle()}
	}
	sl.styles = styles
	return sl.Changed.Emit(struct{}{})
}

// Save writes a style back to its preset file in dir and reloads the list.
func (sl *StyleList) Save(dir string, style *Style) error {
	if style.Filename == "" {
		style.Filename = sanitizeFilename(style.Name) + ".yaml"
	}
	data, err := yaml.Marshal(style)
	if err != nil {
		return fmt.Errorf("styles: encode %s: %w", style.Name, err)
	}
	path := filepath.Join(dir, style.Filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("styles: write %s: %w", path, err)
	}
	return sl.LoadDirectory(dir)
}

func loadStyleFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var style Style
	if err := yaml.Unmarshal(data, &style); err != nil {
		return nil, err
	}
	if style.Name == "" {
		return nil, fmt.Errorf("missing style name")
	}
	style.Filename = filepath.Base(path)
	return &style, nil
}

func sanitizeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	return strings.Trim(mapped, "-")
}
