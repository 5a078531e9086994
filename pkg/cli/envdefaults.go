package cli

import (
	"os"
	"strconv"
)

// EnvIntDefault reads key from the environment (populated by the .env file
// terminal_preview.go's init loads) and parses it as an int, falling back to
// def when the key is unset or malformed. Used by cmd/skeletrace to let a
// project's .env pin chunk_size/max_iter/threshold-window defaults that
// command-line flags still override.
func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvFloatDefault is EnvIntDefault's float64 counterpart, used for the
// trim fuzz and adaptive-threshold offset defaults.
func EnvFloatDefault(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
