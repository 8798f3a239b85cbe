package main

import (
	"strings"

	"github.com/alanbriolat/ytt/generic"
)

var (
	commandNames = generic.NewSet("fetch", "config")
	globalFlags  = generic.NewSet("config-dir", "cache-backend", "timeout", "debug")
	// Global flags which take a value as the next argument
	globalValueFlags = generic.NewSet("config-dir", "cache-backend", "timeout")
	// Global flags which should be handled by the app as-is
	passthroughFlags = generic.NewSet("help", "h", "version", "V")
)

// rewriteArgs makes "fetch" the default command, so that "ytt <url>" means "ytt fetch <url>". It also moves fetch's
// flags before its argument, because flag parsing stops at the first positional argument.
func rewriteArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	var globals []string
	rest := args[1:]
	for len(rest) > 0 && isFlag(rest[0]) {
		name, hasValue := flagName(rest[0])
		if passthroughFlags.Contains(name) {
			return args
		} else if !globalFlags.Contains(name) {
			break
		}
		globals = append(globals, rest[0])
		rest = rest[1:]
		if globalValueFlags.Contains(name) && !hasValue && len(rest) > 0 {
			globals = append(globals, rest[0])
			rest = rest[1:]
		}
	}

	if len(rest) > 0 && commandNames.Contains(rest[0]) {
		if rest[0] != "fetch" {
			return args
		}
		rest = rest[1:]
	}

	var flags, positional []string
	for i, arg := range rest {
		if arg == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		} else if isFlag(arg) {
			flags = append(flags, arg)
		} else {
			positional = append(positional, arg)
		}
	}

	result := make([]string, 0, len(args)+1)
	result = append(result, args[0])
	result = append(result, globals...)
	result = append(result, "fetch")
	result = append(result, flags...)
	for _, arg := range positional {
		if strings.HasPrefix(arg, "-") {
			result = append(result, "--")
			break
		}
	}
	return append(result, positional...)
}

func isFlag(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-") && arg != "--"
}

// flagName returns the name of a flag argument without leading dashes, and whether it includes "=value".
func flagName(arg string) (string, bool) {
	name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return name, hasValue
}
