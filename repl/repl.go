/*
File   : lpm-go/repl/repl.go
Package: repl
*/

// Package repl implements the Read-Eval-Print Loop for lpm, the interpreter
// for the Spanish-keyword toy language described in SPEC_FULL.md. It reads
// one line at a time, appends it to the source accumulated so far, and
// re-parses and evaluates the whole buffer against a single environment
// that persists for the lifetime of the session, printing either the
// resulting value or any error.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/sebaez11/lpm-go/environment"
	"github.com/sebaez11/lpm-go/evaluator"
	"github.com/sebaez11/lpm-go/parser"
)

// salirCmd is the REPL's exit sentinel. It is not a language construct —
// there is no `salir` builtin or keyword — it is recognized by the REPL
// loop itself before the line ever reaches the parser.
const salirCmd = "salir()"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration for an interactive session: the
// startup banner, version/author strings, and the prompt. None of it
// affects evaluation semantics.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl builds a Repl ready to Start.
func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and the short usage hint,
// including the real exit command (salir()), to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Bienvenido a lpm.")
	cyanColor.Fprintf(writer, "%s\n", "Escribe tu código y presiona enter.")
	cyanColor.Fprintf(writer, "%s\n", "Escribe 'salir()' para salir.")
	cyanColor.Fprintf(writer, "%s\n", "Usa las flechas arriba/abajo para navegar el historial.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until salir() is typed or EOF (Ctrl+D) is
// reached. Every non-sentinel line is appended to an accumulated source
// list (spec.md §6.1); each iteration re-joins that list with single
// spaces and re-parses the whole buffer from scratch, so a `procedimiento`
// body split across several prompts still parses as one program. One
// environment.Environment is created up front and reused across every
// iteration rather than recreated per §6.1's literal "fresh environment
// each iteration" (SPEC_FULL.md §9). Because the whole buffer is
// re-evaluated on every iteration, each earlier `variable` binding is
// re-introduced into that environment on every new line.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()
	var lines []string

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Hasta luego!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == salirCmd {
			writer.Write([]byte("Hasta luego!\n"))
			break
		}

		rl.SaveHistory(line)

		lines = append(lines, line)
		r.executeWithRecovery(writer, strings.Join(lines, " "), env)
	}
}

// executeWithRecovery parses and evaluates the accumulated source buffer,
// recovering from any panic so a single bad line never kills the session.
// Parser errors are printed (all of them, since the parser accumulates
// rather than stops at the first) and evaluation simply resumes at the
// next prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, source string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[ERROR DE EJECUCIÓN] %v\n", recovered)
		}
	}()

	p := parser.New(source)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == "ERROR" {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
