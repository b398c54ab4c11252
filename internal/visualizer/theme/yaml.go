package theme

import (
	"fmt"
	"io"
	"os"

	"plan-visualizer/internal/visualizer/models"

	"gopkg.in/yaml.v3"
)

type paletteFile struct {
	Themes []models.ThemeDescriptor `yaml:"themes"`
}

// LoadPalettes reads a YAML palette file.
func LoadPalettes(path string) ([]models.ThemeDescriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadPalettesFromReader(file)
}

// LoadPalettesFromReader parses palettes of the form
//
//	themes:
//	  - name: Modern
//	    wallColor: "#E2E8F0"
func LoadPalettesFromReader(r io.Reader) ([]models.ThemeDescriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc paletteFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode palettes: %w", err)
	}

	for i, t := range doc.Themes {
		if t.Name == "" {
			return nil, fmt.Errorf("palette %d: name required", i)
		}
	}
	return doc.Themes, nil
}

// Merge overlays extra palettes on base, replacing entries with the same name.
func Merge(base, extra []models.ThemeDescriptor) []models.ThemeDescriptor {
	out := make([]models.ThemeDescriptor, 0, len(base)+len(extra))
	index := make(map[string]int, len(base)+len(extra))
	for _, t := range append(append([]models.ThemeDescriptor{}, base...), extra...) {
		if i, ok := index[t.Name]; ok {
			out[i] = t
			continue
		}
		index[t.Name] = len(out)
		out = append(out, t)
	}
	return out
}
