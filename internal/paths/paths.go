package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	appName = "pyfreeze"

	// Name of the project file in the workspace root.
	ProjectFile = "pyfreeze.yaml"

	// Name of the dotenv file in the workspace root.
	EnvFile = ".env"
)

// Path to the user-level config file.
//
//	Linux:   $XDG_CONFIG_HOME/pyfreeze/config.yaml or ~/.config/pyfreeze/config.yaml
//	macOS:   ~/Library/Application Support/pyfreeze/config.yaml
//	Windows: %LOCALAPPDATA%\pyfreeze\config.yaml
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Path to the project file under root.
func Project(root string) string {
	return filepath.Join(root, ProjectFile)
}

// Path to the dotenv file under root.
func Env(root string) string {
	return filepath.Join(root, EnvFile)
}

// Returns the config file to load for root.
//
// An explicit path always wins. Otherwise the project file is used when it
// exists, then the user-level config file. Returns "" when none exists.
func ResolveConfig(root, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, p := range []string{Project(root), UserConfig()} {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}
