package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is a snapshot of the process environment taken at startup.
type Config map[string]string

func New() Config {
	environ := os.Environ()
	cfg := make(Config, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			cfg[key] = value
		}
	}
	return cfg
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// String returns the value for key, or defaultValue when key is absent.
func (c Config) String(key, defaultValue string) string {
	if c == nil {
		return defaultValue
	}
	if val, ok := c[key]; ok {
		return val
	}
	return defaultValue
}

// Int returns the value for key parsed as an integer, or defaultValue when
// the key is absent or not a number.
func (c Config) Int(key string, defaultValue int) int {
	s, ok := c[key]
	if !ok {
		return defaultValue
	}
	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return asInt
}
