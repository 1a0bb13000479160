// Package paths resolves where permcalc looks for its config file and the
// permission-set reference CSV.
package paths

import (
	"os"
	"path/filepath"
)

// ReferenceCSVName is the reference table filename shipped alongside the
// executable, named after the report export it is copied from.
const ReferenceCSVName = "Permission Sets.csv"

// EnvReferenceCSV overrides the reference CSV location when set.
const EnvReferenceCSV = "PERMCALC_CSV"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.permcalc.
func ConfigDir() string {
	return filepath.Join(home(), ".permcalc")
}

// ConfigFile returns ~/.permcalc/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ReferenceCSV returns the reference CSV path: the PERMCALC_CSV environment
// variable when set, otherwise "Permission Sets.csv" next to the executable.
func ReferenceCSV() string {
	if p := os.Getenv(EnvReferenceCSV); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ReferenceCSVName
	}
	return filepath.Join(filepath.Dir(exe), ReferenceCSVName)
}
