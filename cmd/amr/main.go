// Command amr runs one of the engine's built-in drivers against an
// adaptively refined mesh, alternating solve/refine/save the way the
// original thermal driver does.
//
// Usage:
//
//	amr <driver> [iterations]
//
// Exit code 1 on bad arguments, 0 on success.
package main

import (
	"fmt"
	"os"
	"strconv"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// drivers maps a driver name to its entrypoint.
var drivers = map[string]func(iterations int, out *os.File) error{
	"thermal": runThermal,
}

func run(args []string, out *os.File) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: amr <driver> [iterations]")
	}

	driver, ok := drivers[args[0]]
	if !ok {
		return fmt.Errorf("unknown driver %q", args[0])
	}

	iterations := defaultIterations
	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid iterations %q", args[1])
		}
		iterations = n
	}

	return driver(iterations, out)
}
