// Package assets embeds the default skill catalog and tuning presets.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/pixil98/go-rotsim/internal/storage"
)

//go:embed catalog
var catalogFS embed.FS

//go:embed presets.toml
var presetData string

// LoadCatalog reads the resources, cooldowns and skills directories of fsys
// and resolves them into a catalog.
func LoadCatalog(fsys fs.FS) (*skill.Catalog, error) {
	resources, err := storage.NewFileStore[*skill.ResourceSpec](fsys, "resources")
	if err != nil {
		return nil, fmt.Errorf("loading resources: %w", err)
	}
	cooldowns, err := storage.NewFileStore[*skill.CooldownSpec](fsys, "cooldowns")
	if err != nil {
		return nil, fmt.Errorf("loading cooldowns: %w", err)
	}
	skills, err := storage.NewFileStore[*skill.Skill](fsys, "skills")
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}

	c, err := skill.NewCatalog(resources.GetAll(), cooldowns.GetAll(), skills.GetAll())
	if err != nil {
		return nil, fmt.Errorf("resolving catalog: %w", err)
	}
	return c, nil
}

// DefaultCatalog loads the embedded catalog.
func DefaultCatalog() (*skill.Catalog, error) {
	sub, err := fs.Sub(catalogFS, "catalog")
	if err != nil {
		return nil, err
	}
	return LoadCatalog(sub)
}

// DefaultPresets parses the embedded presets.
func DefaultPresets() (game.Presets, error) {
	return game.ParsePresets(presetData)
}
