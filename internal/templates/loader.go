package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir adds every *.yaml or *.yml preset in dir to the catalog. A file
// without an id takes its base name. It returns the ids loaded.
func (c *Catalog) LoadDir(dir string) ([]string, error) {
	cleaned := filepath.Clean(strings.TrimSpace(dir))
	if cleaned == "" || cleaned == "." {
		return nil, errors.New("templates directory is required")
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("templates path must be a directory")
	}

	entries, err := os.ReadDir(cleaned)
	if err != nil {
		return nil, err
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		preset, err := c.LoadFile(filepath.Join(cleaned, entry.Name()))
		if err != nil {
			return loaded, err
		}
		loaded = append(loaded, preset.ID)
	}
	return loaded, nil
}

// LoadFile parses one YAML preset and adds it to the catalog.
func (c *Catalog) LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}

	preset, err := c.Parse(data)
	if err != nil && errors.Is(err, errMissingID) {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		preset, err = c.parseWithID(data, base)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("load template %s: %w", filepath.Base(path), err)
	}

	c.Add(preset)
	return preset, nil
}

var errMissingID = errors.New("template id is missing")

// Parse builds a preset from YAML without adding it to the catalog.
func (c *Catalog) Parse(data []byte) (Preset, error) {
	return c.parseWithID(data, "")
}

func (c *Catalog) parseWithID(data []byte, fallbackID string) (Preset, error) {
	var def presetDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Preset{}, err
	}
	if strings.TrimSpace(def.ID) == "" {
		if fallbackID == "" {
			return Preset{}, errMissingID
		}
		def.ID = fallbackID
	}
	return c.build(def)
}
