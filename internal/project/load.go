package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cruciblehq/pyfreeze/internal/paths"
)

// Environment variables that override project fields.
const (
	EnvPython   = "PYFREEZE_PYTHON"
	EnvPackager = "PYFREEZE_PACKAGER"
	EnvName     = "PYFREEZE_NAME"
	EnvEntry    = "PYFREEZE_ENTRY"
)

// Loads the project for the workspace at root.
//
// configPath selects the YAML file explicitly; when empty the project file in
// root is used, then the user-level config file, then the defaults alone.
// The result is validated before it is returned.
func Load(root, configPath string) (*Project, error) {
	p := Default()

	if path := paths.ResolveConfig(root, configPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		if err := Decode(data, p); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
		}
		slog.Debug("loaded config", "path", path)
	}

	dotenv, err := readEnvFile(paths.Env(root))
	if err != nil {
		return nil, err
	}
	applyEnv(p, lookup(dotenv))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Decodes YAML data onto p.
//
// Fields absent from the document keep their current values. Unknown fields
// are rejected. An empty document is not an error.
func Decode(data []byte, p *Project) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Reads a dotenv file without modifying the process environment. A missing
// file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadEnv, path, err)
	}
	slog.Debug("loaded env file", "path", path, "keys", len(env))
	return env, nil
}

// Returns a lookup that prefers the process environment over dotenv values.
func lookup(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(dotenv[key])
	}
}

// Overrides project fields from the environment. Empty values are ignored.
func applyEnv(p *Project, get func(string) string) {
	overrides := []struct {
		key   string
		field *string
	}{
		{EnvPython, &p.Python},
		{EnvPackager, &p.Packager.Program},
		{EnvName, &p.Name},
		{EnvEntry, &p.Entry},
	}
	for _, o := range overrides {
		if v := get(o.key); v != "" {
			*o.field = v
		}
	}
}
