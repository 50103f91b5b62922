// Package project describes the Python application being packaged.
//
// A [Project] starts from built-in defaults and is layered with, in order of
// increasing precedence: a YAML project file, a .env file in the workspace
// root, and PYFREEZE_* environment variables. Lists in the YAML file replace
// the defaults rather than extending them.
//
// Example pyfreeze.yaml:
//
//	name: DailyReminder
//	entry: daily_reminder.py
//	python: python3
//	icons:
//	  primary: app_icon.ico
//	  secondary: tray_icon.ico
//	candidates:
//	  - name: requests
//	    note: HTTP client
//	platform:
//	  name: winreg
//	  os: windows
package project
