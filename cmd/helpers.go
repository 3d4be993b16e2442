package cmd

import (
	"fmt"
	"strings"
)

// splitTaskArgs separates the positional task selector from the KEY=value
// parameters that follow it. An empty task name selects the registry's
// default task.
func splitTaskArgs(args []string) (task string, params []string) {
	if len(args) == 0 {
		return "", nil
	}
	if strings.Contains(args[0], "=") {
		return "", args
	}
	return args[0], args[1:]
}

// parseParams parses KEY=value arguments into a parameter map. Keys must
// be non-empty; values may be empty (the dispatcher treats an empty
// required parameter as missing).
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected KEY=value)", arg)
		}
		params[key] = value
	}
	return params, nil
}
