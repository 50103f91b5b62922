// Package command assembles the PyInstaller argument vector.
//
// A command is built from flag groups, each a run of contiguous tokens that
// is either emitted whole or omitted. Groups are concatenated in a fixed
// order: the base command, icon groups, one hidden import per present
// optional module, the platform capability import, and finally the entry
// script. The entry script is always the last token.
//
// Assembly is pure given the probe results and the icon files present on
// disk, so the same environment always yields the same command.
//
// Example usage:
//
//	a := command.Assembler{
//	    Program: "pyinstaller",
//	    Modes:   []string{"--onefile", "--windowed"},
//	    Name:    "DailyReminder",
//	    Entry:   "daily_reminder.py",
//	    Icons:   command.Icons{Primary: "app_icon.ico", Secondary: "tray_icon.ico"},
//	    Root:    ".",
//	}
//	cmd := a.Assemble(results, platform)
package command
