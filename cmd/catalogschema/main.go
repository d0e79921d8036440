// Command catalogschema writes JSON schemas for the catalog asset files so
// editors can check them.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/pixil98/go-rotsim/internal/storage"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the schemas to")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(1)
	}

	for name, schema := range buildSchemas() {
		path := filepath.Join(outDir, name+".schema.json")
		if err := writeSchema(path, schema); err != nil {
			slog.Error("writing schema", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("wrote schema", "path", path)
	}
}

// buildSchemas returns one schema per catalog directory.
func buildSchemas() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"resources": assetSchema(new(storage.Asset[*skill.ResourceSpec]), "Resource", "A tracked quantity such as mana or a buff stack"),
		"cooldowns": assetSchema(new(storage.Asset[*skill.CooldownSpec]), "Cooldown", "A recast timer with one or more charges"),
		"skills":    assetSchema(new(storage.Asset[*skill.Skill]), "Skill", "A spell or ability a player can use"),
	}
}

func assetSchema(v any, title, description string) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(v)
	schema.Title = title
	schema.Description = description
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
