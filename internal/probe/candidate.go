package probe

import "regexp"

// Matches a dotted Python module path such as "PyQt6.QtCore".
var modulePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// An optional module whose presence adds a hidden import to the command.
type Candidate struct {
	Name string `yaml:"name"`           // Importable module path.
	Note string `yaml:"note,omitempty"` // What the application uses it for.
}

// The outcome of probing one candidate.
type Result struct {
	Candidate Candidate
	Present   bool
}

// A module that only exists on one host platform.
type Capability struct {
	Name string `yaml:"name"` // Importable module path.
	OS   string `yaml:"os"`   // GOOS value of the platform that provides it.
}

// Returns the default candidate list, in probe order.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "PyQt6.QtCore", Note: "Qt core"},
		{Name: "PyQt6.QtGui", Note: "Qt GUI"},
		{Name: "PyQt6.QtWidgets", Note: "Qt widgets"},
		{Name: "PyQt6.QtPrintSupport", Note: "Qt printing"},
		{Name: "chinese_calendar", Note: "holiday calendar"},
		{Name: "lunardate", Note: "lunar calendar"},
		{Name: "requests", Note: "HTTP client"},
		{Name: "PIL", Note: "image processing"},
		{Name: "qrcode", Note: "QR codes"},
		{Name: "openpyxl", Note: "spreadsheet import"},
	}
}

// Returns the default platform capability, the Windows registry module.
func DefaultCapability() Capability {
	return Capability{Name: "winreg", OS: "windows"}
}

// Returns true if name is a syntactically valid module path.
func ValidName(name string) bool {
	return modulePattern.MatchString(name)
}
