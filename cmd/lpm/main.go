/*
File   : lpm-go/cmd/lpm/main.go
Package: main
*/

// Command lpm is the entry point for the interpreter. With no arguments it
// starts an interactive REPL; given a path, it executes that file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sebaez11/lpm-go/environment"
	"github.com/sebaez11/lpm-go/evaluator"
	"github.com/sebaez11/lpm-go/parser"
	"github.com/sebaez11/lpm-go/repl"
)

const (
	version = "v1.0.0"
	author  = "lpm contributors"
	line    = "----------------------------------------------------------------"
	prompt  = "lpm >>> "
)

var banner = `
 ██▓     ██▓███   ███▄ ▄███▓
▓██▒    ▓██░  ██▒▓██▒▀█▀ ██▒
▒██░    ▓██░ ██▓▒▓██    ▓██░
▒██░    ▒██▄█▓▒ ▒▒██    ▒██
░██████▒▒██▒ ░  ░▒██▒   ░██▒
░ ▒░▓  ░▒▓▒░ ░  ░░ ▒░   ░  ░
░ ░ ▒  ░░▒ ░      ░  ░      ░
  ░ ░   ░░              ░
    ░  ░                ░
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	showVersion := flag.Bool("version", false, "print the interpreter version and exit")
	flag.BoolVar(showVersion, "v", false, "shorthand for --version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lpm %s\n", version)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		repler := repl.NewRepl(banner, version, author, line, prompt)
		repler.Start(os.Stdout)
		return
	}

	runFile(args[0])
}

// runFile reads path, evaluates its entire contents as a single program
// against a fresh environment, and prints either the resulting value or
// any error. A parse error or a runtime Error object exits with status 1;
// a panic recovered from evaluation does the same (SPEC_FULL.md §6.1,
// file mode).
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR DE ARCHIVO] no se pudo leer '%s': %v\n", path, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[ERROR DE EJECUCIÓN] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.New(string(source))
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[ERROR DE SINTAXIS] %s\n", msg)
		}
		os.Exit(1)
	}

	env := environment.New()
	result := evaluator.Eval(program, env)

	if result == nil {
		return
	}

	if result.Type() == "ERROR" {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
}
