// SPDX-License-Identifier: MIT

// Command densela solves dense linear systems and fits polynomials from JSON
// input files.
//
// Usage:
//
//	densela solve -in system.json [-method auto|lu|qr|cholesky] [-json]
//	densela fit   -in points.json -degree N [-plot out.png]
//
// A system file holds {"a": [[...]], "b": [[...]]}; a points file holds
// {"x": [...], "y": [...]}. Any error is reported on stderr and the process
// exits with status 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const usage = `usage:
  densela solve -in system.json [-method auto|lu|qr|cholesky] [-json]
  densela fit   -in points.json -degree N [-plot out.png]
`

var errUsage = errors.New("bad usage")

// env carries the output streams of one invocation.
type env struct {
	out    io.Writer
	logger *log.Logger
	p      *message.Printer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	e := &env{
		out:    stdout,
		logger: log.New(stderr, "densela: ", 0),
		p:      message.NewPrinter(language.English),
	}
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	var err error
	switch args[0] {
	case "solve":
		err = runSolve(e, args[1:])
	case "fit":
		err = runFit(e, args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		err = fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	if err != nil {
		e.logger.Print(err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
		}
		return 1
	}

	return 0
}
