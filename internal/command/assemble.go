package command

import (
	"os"
	"path/filepath"

	"github.com/cruciblehq/pyfreeze/internal/probe"
)

const (
	flagName         = "--name"
	flagDistPath     = "--distpath"
	flagIcon         = "--icon"
	flagAddData      = "--add-data"
	flagHiddenImport = "--hidden-import"

	// Destination of bundled data files inside the frozen application.
	dataDest = "."

	// Output directory PyInstaller uses when --distpath is not given.
	DefaultDist = "dist"
)

// Optional icon files, relative to the workspace root.
type Icons struct {
	Primary   string // Application icon. Adds an icon flag and a data flag.
	Secondary string // Tray icon. Adds a data flag only.
}

// Builds the packager command from static inputs and probe results.
type Assembler struct {
	Program       string                 // Packager program name.
	Modes         []string               // Mode flags following the program name.
	Name          string                 // Application name passed to --name.
	Dist          string                 // Output directory. Empty or DefaultDist emits no --distpath.
	Entry         string                 // Entry script, always the last token.
	Icons         Icons                  // Optional icon files.
	Root          string                 // Workspace root icons are resolved against.
	DataSeparator string                 // Source/destination separator for --add-data. Empty uses the host list separator.
	FileExists    func(path string) bool // Reports whether a file exists. Nil uses the filesystem.
}

// Returns the flag groups for a command, in emission order.
//
// Absent groups are included with no tokens so callers can see what was
// omitted.
func (a *Assembler) Groups(results []probe.Result, platform probe.Result) []FlagGroup {
	groups := make([]FlagGroup, 0, len(results)+5)

	base := append([]string{a.Program}, a.Modes...)
	base = append(base, flagName, a.Name)
	if a.Dist != "" && a.Dist != DefaultDist {
		base = append(base, flagDistPath, a.Dist)
	}
	groups = append(groups, FlagGroup{Name: "base", Tokens: base})

	groups = append(groups, a.primaryIcon(), a.secondaryIcon())

	for _, r := range results {
		groups = append(groups, hiddenImport(r))
	}
	groups = append(groups, hiddenImport(platform))

	groups = append(groups, FlagGroup{Name: "entry", Tokens: []string{a.Entry}})

	return groups
}

// Assembles the command from the present flag groups.
func (a *Assembler) Assemble(results []probe.Result, platform probe.Result) Command {
	return Join(a.Groups(results, platform))
}

// Returns the icon and data group for the primary icon, if it exists.
func (a *Assembler) primaryIcon() FlagGroup {
	g := FlagGroup{Name: "icon"}
	if !a.iconExists(a.Icons.Primary) {
		return g
	}
	g.Tokens = []string{flagIcon, a.Icons.Primary, flagAddData, a.dataSpec(a.Icons.Primary)}
	return g
}

// Returns the data group for the secondary icon, if it exists.
func (a *Assembler) secondaryIcon() FlagGroup {
	g := FlagGroup{Name: "tray icon"}
	if !a.iconExists(a.Icons.Secondary) {
		return g
	}
	g.Tokens = []string{flagAddData, a.dataSpec(a.Icons.Secondary)}
	return g
}

// Formats an --add-data value bundling src into the application root.
func (a *Assembler) dataSpec(src string) string {
	sep := a.DataSeparator
	if sep == "" {
		sep = string(os.PathListSeparator)
	}
	return src + sep + dataDest
}

// Returns true if the icon path is set and exists under the root.
func (a *Assembler) iconExists(path string) bool {
	if path == "" {
		return false
	}
	full := path
	if !filepath.IsAbs(path) {
		full = filepath.Join(a.Root, path)
	}
	if a.FileExists != nil {
		return a.FileExists(full)
	}
	return fileExists(full)
}

// Returns a hidden import group for a present result with a well-formed name.
func hiddenImport(r probe.Result) FlagGroup {
	g := FlagGroup{Name: "hidden import " + r.Candidate.Name}
	if r.Present && probe.ValidName(r.Candidate.Name) {
		g.Tokens = []string{flagHiddenImport, r.Candidate.Name}
	}
	return g
}

// Returns true if path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
