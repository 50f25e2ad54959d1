package console

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config is the setup for a single [Console] invocation.
// It's constructed once and handed to [New], there's no process-wide console state.
type Config struct {
	Name        string    // Name is the application name shown in usage lines.
	Description string    // Description is shown at the top of the application help screen.
	Args        []string  // Args are the raw arguments, not including the program name.
	Writer      io.Writer // Writer receives all user-visible output. Defaults to STDERR.
	NoColor     bool      // NoColor disables style escape sequences, even on a terminal.
	ForceColor  bool      // ForceColor renders style escape sequences even when not writing to a terminal.
}

// DefaultConfig creates a [Config] from the running process.
//
// The NO_COLOR environment variable disables color when set to any non-empty value, and FORCE_COLOR enables it when set to a value in [EnvTrue].
func DefaultConfig() Config {
	var name string
	if len(os.Args) > 0 {
		name = filepath.Base(os.Args[0])
	}
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return Config{
		Name:       name,
		Args:       args,
		Writer:     os.Stderr,
		NoColor:    len(envVal("NO_COLOR", "")) > 0,
		ForceColor: envBool("FORCE_COLOR", false),
	}
}

var (
	EnvTrue  = []string{"1", "yes", "true", "on"}  // EnvTrue are the values considered "true" in environment variables, and can be changed.
	EnvFalse = []string{"0", "no", "false", "off"} // EnvFalse are the values considered "false" in environment variables, and can be changed.
)

// envVal gets an environment variable value by its exact name.
// If the variable isn't set, or is blank, then defaultVal is returned.
func envVal(key string, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

func envBool(key string, defaultVal bool) bool {
	sval := envVal(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range EnvTrue {
		if strings.EqualFold(sval, v) {
			return true
		}
	}
	for _, v := range EnvFalse {
		if strings.EqualFold(sval, v) {
			return false
		}
	}
	return defaultVal
}
