package config

// Defaults returns the base configuration values applied before any file or
// environment source.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_file": "todos.json",
		"theme":     "classic",
		"no_color":  false,
		"debug":     false,
	}
}
