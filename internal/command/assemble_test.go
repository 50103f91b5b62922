package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cruciblehq/pyfreeze/internal/probe"
)

// Returns an assembler whose file checks answer from the given set.
func newAssembler(files ...string) *Assembler {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[filepath.Join("/work", f)] = true
	}
	return &Assembler{
		Program:       "pyinstaller",
		Modes:         []string{"--onefile", "--windowed"},
		Name:          "DailyReminder",
		Entry:         "daily_reminder.py",
		Icons:         Icons{Primary: "app_icon.ico", Secondary: "tray_icon.ico"},
		Root:          "/work",
		DataSeparator: ";",
		FileExists:    func(p string) bool { return present[p] },
	}
}

// Returns results for the default candidates with the named ones present.
func results(present ...string) []probe.Result {
	set := make(map[string]bool, len(present))
	for _, p := range present {
		set[p] = true
	}
	candidates := probe.DefaultCandidates()
	out := make([]probe.Result, len(candidates))
	for i, c := range candidates {
		out[i] = probe.Result{Candidate: c, Present: set[c.Name]}
	}
	return out
}

func platform(present bool) probe.Result {
	return probe.Result{Candidate: probe.Candidate{Name: "winreg"}, Present: present}
}

var base = []string{"pyinstaller", "--onefile", "--windowed", "--name", "DailyReminder"}

func TestAssembleMinimal(t *testing.T) {
	got := newAssembler().Assemble(results(), platform(false))
	want := Command(append(append([]string{}, base...), "daily_reminder.py"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleBothIconsThreeModulesNoPlatform(t *testing.T) {
	a := newAssembler("app_icon.ico", "tray_icon.ico")
	got := a.Assemble(results("PyQt6.QtCore", "requests", "openpyxl"), platform(false))

	want := Command(append(append([]string{}, base...),
		"--icon", "app_icon.ico",
		"--add-data", "app_icon.ico;.",
		"--add-data", "tray_icon.ico;.",
		"--hidden-import", "PyQt6.QtCore",
		"--hidden-import", "requests",
		"--hidden-import", "openpyxl",
		"daily_reminder.py",
	))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleSecondaryIconOnly(t *testing.T) {
	got := newAssembler("tray_icon.ico").Assemble(results(), platform(false))

	for _, tok := range got {
		if tok == "--icon" {
			t.Fatalf("icon flag emitted without primary icon: %v", got)
		}
	}
	want := Command(append(append([]string{}, base...),
		"--add-data", "tray_icon.ico;.",
		"daily_reminder.py",
	))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemblePlatformAfterOptionalModules(t *testing.T) {
	got := newAssembler().Assemble(results("lunardate", "qrcode"), platform(true))

	want := Command(append(append([]string{}, base...),
		"--hidden-import", "lunardate",
		"--hidden-import", "qrcode",
		"--hidden-import", "winreg",
		"daily_reminder.py",
	))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleEntryAlwaysLast(t *testing.T) {
	all := make([]string, 0)
	for _, c := range probe.DefaultCandidates() {
		all = append(all, c.Name)
	}

	tests := []struct {
		name     string
		files    []string
		present  []string
		platform bool
	}{
		{name: "nothing"},
		{name: "icons only", files: []string{"app_icon.ico", "tray_icon.ico"}},
		{name: "everything", files: []string{"app_icon.ico", "tray_icon.ico"}, present: all, platform: true},
		{name: "platform only", platform: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newAssembler(tt.files...).Assemble(results(tt.present...), platform(tt.platform))
			if got[len(got)-1] != "daily_reminder.py" {
				t.Fatalf("last token = %q, want entry script", got[len(got)-1])
			}
			if got.Program() != "pyinstaller" {
				t.Fatalf("program = %q, want pyinstaller", got.Program())
			}
		})
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := newAssembler("app_icon.ico")
	r := results("PyQt6.QtGui", "PIL")

	first := a.Assemble(r, platform(true))
	second := a.Assemble(r, platform(true))
	if !first.Equal(second) {
		t.Fatalf("commands differ:\n%v\n%v", first, second)
	}
}

func TestAssembleIgnoresNamelessResult(t *testing.T) {
	r := []probe.Result{{Present: true}}
	got := newAssembler().Assemble(r, probe.Result{})

	want := Command(append(append([]string{}, base...), "daily_reminder.py"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupsReportsAbsentGroups(t *testing.T) {
	groups := newAssembler().Groups(results("requests"), platform(false))

	// base, icon, tray icon, one per candidate, platform, entry
	if want := 3 + len(probe.DefaultCandidates()) + 2; len(groups) != want {
		t.Fatalf("len(groups) = %d, want %d", len(groups), want)
	}

	present := 0
	for _, g := range groups {
		if g.Present() {
			present++
		}
	}
	if present != 3 {
		t.Fatalf("present groups = %d, want 3 (base, requests, entry)", present)
	}
}

func TestAssembleUsesFilesystem(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "app_icon.ico"), []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}
	// A directory with the icon name is not an icon.
	if err := os.Mkdir(filepath.Join(root, "tray_icon.ico"), 0755); err != nil {
		t.Fatal(err)
	}

	a := &Assembler{
		Program:       "pyinstaller",
		Name:          "App",
		Entry:         "app.py",
		Icons:         Icons{Primary: "app_icon.ico", Secondary: "tray_icon.ico"},
		Root:          root,
		DataSeparator: ":",
	}
	got := a.Assemble(nil, probe.Result{})

	want := Command{"pyinstaller", "--name", "App", "--icon", "app_icon.ico", "--add-data", "app_icon.ico:.", "app.py"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin(t *testing.T) {
	got := Join([]FlagGroup{
		{Name: "a", Tokens: []string{"x", "y"}},
		{Name: "absent"},
		{Name: "b", Tokens: []string{"z"}},
	})
	if diff := cmp.Diff(Command{"x", "y", "z"}, got); diff != "" {
		t.Fatalf("Join mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandAccessors(t *testing.T) {
	var empty Command
	if empty.Program() != "" || empty.Args() != nil {
		t.Fatal("empty command accessors should return zero values")
	}

	c := Command{"pyinstaller", "--onefile", "app.py"}
	if c.Program() != "pyinstaller" {
		t.Fatalf("Program = %q", c.Program())
	}
	if diff := cmp.Diff([]string{"--onefile", "app.py"}, c.Args()); diff != "" {
		t.Fatalf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleSkipsMalformedPresentResult(t *testing.T) {
	r := []probe.Result{{Candidate: probe.Candidate{Name: "x; rm -rf"}, Present: true}}
	got := newAssembler().Assemble(r, probe.Result{})

	want := Command(append(append([]string{}, base...), "daily_reminder.py"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleDistPath(t *testing.T) {
	tests := []struct {
		name string
		dist string
		want []string
	}{
		{name: "unset", dist: "", want: base},
		{name: "packager default", dist: DefaultDist, want: base},
		{name: "custom", dist: "out", want: append(append([]string{}, base...), "--distpath", "out")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAssembler()
			a.Dist = tt.dist
			got := a.Assemble(results(), platform(false))

			want := Command(append(append([]string{}, tt.want...), "daily_reminder.py"))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
