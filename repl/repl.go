/*
File    : ocrpi/repl/repl.go
*/

// Package repl implements the interactive shell: read a line, parse
// it, evaluate it against a scope that persists across lines, repeat.
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/jaddison06/ocrpi/eval"
	"github.com/jaddison06/ocrpi/parser"
	"github.com/jaddison06/ocrpi/values"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for one shell session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl builds a Repl with the given display configuration.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type OCR-script and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.vars' to list global bindings, '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until EOF, an error from
// readline, or the user typing '.exit'. A single Evaluator persists
// across the whole session, so a `global` from one line is visible to
// the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		if line == ".vars" {
			rl.SaveHistory(line)
			printGlobals(writer, evaluator)
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// printGlobals lists every name bound in the session's global scope,
// sorted for a stable display order (map iteration itself carries no
// meaning here, see values.Scope.Names).
func printGlobals(writer io.Writer, evaluator *eval.Evaluator) {
	global := evaluator.Globals()
	names := global.Names()
	sort.Strings(names)
	for _, name := range names {
		ref, ok := global.Lookup(name)
		if !ok {
			continue
		}
		greenColor.Fprintf(writer, "%s = %s\n", name, values.Stringify(values.Deref(ref)))
	}
}

// executeWithRecovery parses and evaluates one line, recovering from
// any fault so the shell keeps running afterward. Unlike file mode, a
// REPL error is never fatal to the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	prog := p.Parse()

	if p.HasErrors() {
		for _, perr := range p.Errors {
			redColor.Fprintf(writer, "%s\n", perr)
		}
		return
	}

	evaluator.Run(prog)
}
