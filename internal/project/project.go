package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cruciblehq/pyfreeze/internal/command"
	"github.com/cruciblehq/pyfreeze/internal/probe"
)

// Directory PyInstaller writes intermediate files to.
const buildDir = "build"

// The external packaging tool.
type Packager struct {
	Program string   `yaml:"program"` // Executable name, first token of the command.
	Module  string   `yaml:"module"`  // Python module that must be importable before a run.
	Modes   []string `yaml:"modes"`   // Mode flags following the program name.
	Install string   `yaml:"install"` // Command that installs the packager.
}

// Describes the application and how to package it.
type Project struct {
	Name       string            `yaml:"name"`       // Application name, names the output artifact.
	Entry      string            `yaml:"entry"`      // Entry script, relative to the workspace root.
	Python     string            `yaml:"python"`     // Interpreter used for probes.
	Packager   Packager          `yaml:"packager"`   // External packaging tool.
	Icons      command.Icons     `yaml:"icons"`      // Optional icon files.
	Candidates []probe.Candidate `yaml:"candidates"` // Optional modules, in probe order.
	Platform   probe.Capability  `yaml:"platform"`   // Platform-specific module.
	Dist       string            `yaml:"dist"`       // Output directory.
	Artifacts  []string          `yaml:"artifacts"`  // Extra paths removed before a run.
	Env        map[string]string `yaml:"env"`        // Extra environment for the packager.
}

// Returns the built-in project description.
func Default() *Project {
	return &Project{
		Name:   "DailyReminder",
		Entry:  "daily_reminder.py",
		Python: "python",
		Packager: Packager{
			Program: "pyinstaller",
			Module:  "PyInstaller",
			Modes:   []string{"--onefile", "--windowed"},
			Install: "pip install pyinstaller",
		},
		Icons: command.Icons{
			Primary:   "app_icon.ico",
			Secondary: "tray_icon.ico",
		},
		Candidates: probe.DefaultCandidates(),
		Platform:   probe.DefaultCapability(),
		Dist:       command.DefaultDist,
	}
}

// Returns the workspace-relative paths cleared before a run.
//
// The build directory, the output directory, and the generated spec file
// come first, followed by any extra artifacts. Duplicates are dropped.
func (p *Project) ArtifactPaths() []string {
	paths := []string{buildDir, p.Dist, p.Name + ".spec"}
	for _, a := range p.Artifacts {
		if !slices.Contains(paths, a) {
			paths = append(paths, a)
		}
	}
	return paths
}

// Returns the expected location of the packaged artifact on goos.
func (p *Project) Artifact(goos string) string {
	name := p.Name
	if goos == "windows" {
		name += ".exe"
	}
	return filepath.Join(p.Dist, name)
}

// Returns the environment overrides as sorted "key=value" entries.
func (p *Project) Environ() []string {
	env := make([]string, 0, len(p.Env))
	for k, v := range p.Env {
		env = append(env, k+"="+v)
	}
	slices.Sort(env)
	return env
}

// Returns the remediation message shown when the packager is missing.
func (p *Project) InstallHint() string {
	return fmt.Sprintf("%s is not installed, install it with: %s", p.Packager.Module, p.Packager.Install)
}

// Checks that the fields a run depends on are set.
//
// Candidate names are not validated here; malformed names are treated as
// absent modules at probe time.
func (p *Project) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"entry", p.Entry},
		{"python", p.Python},
		{"packager.program", p.Packager.Program},
		{"packager.module", p.Packager.Module},
		{"dist", p.Dist},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrConfig, r.field)
		}
	}

	if strings.ContainsAny(p.Name, `/\`) {
		return fmt.Errorf("%w: name %q must not contain path separators", ErrConfig, p.Name)
	}

	return nil
}
