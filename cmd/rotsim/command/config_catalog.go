package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-rotsim/assets"
	"github.com/pixil98/go-rotsim/internal/skill"
)

// CatalogConfig points at a directory holding resources/, cooldowns/ and
// skills/ asset files. The embedded catalog is used when Path is empty.
type CatalogConfig struct {
	Path string `json:"path"`
}

func (c *CatalogConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("catalog: invalid path %q: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("catalog: %q is not a directory", c.Path)
	}
	return nil
}

func (c *CatalogConfig) BuildCatalog() (*skill.Catalog, error) {
	if c.Path == "" {
		return assets.DefaultCatalog()
	}
	return assets.LoadCatalog(os.DirFS(c.Path))
}
