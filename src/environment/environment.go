package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ConfigPathVariable names the environment variable pointing at the config file.
const ConfigPathVariable = "TRUTH_TABLE_CONFIG"

var interactiveOverride *bool

// ForceSetIsInteractive allows overriding the interactive check, used by tests
// that need a predictable log format
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive returns true if the code is run by a user with an interactive shell, false otherwise
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ConfigPath returns the config file location set in the environment, or "" if
// none is set.
func ConfigPath() string {
	return os.Getenv(ConfigPathVariable)
}
