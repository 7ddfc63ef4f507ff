package main

import (
	"regexp"
	"slices"
	"strings"
)

// numericArg matches arguments that start like a negative number, so that
// "-4" or "-0.5" reach the validator instead of the flag parser.
var numericArg = regexp.MustCompile(`^-[0-9.]`)

// evalArgs moves the positional operands of an eval invocation behind "--".
// Flags keep their place; everything else is returned unchanged.
func evalArgs(args []string) []string {
	i := slices.Index(args, evalCmd.Name())
	if i < 0 || slices.Contains(args, "--") {
		return args
	}
	rest := args[i+1:]
	if !slices.ContainsFunc(rest, numericArg.MatchString) {
		return args
	}

	out := slices.Clone(args[:i+1])
	var operands []string
	for j := 0; j < len(rest); j++ {
		arg := rest[j]
		switch {
		case numericArg.MatchString(arg) || !strings.HasPrefix(arg, "-"):
			operands = append(operands, arg)
		case (arg == "--method" || arg == "-m") && j+1 < len(rest):
			out = append(out, arg, rest[j+1])
			j++
		default:
			out = append(out, arg)
		}
	}
	out = append(out, "--")
	return append(out, operands...)
}
