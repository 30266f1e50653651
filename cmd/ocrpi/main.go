/*
File    : ocrpi/cmd/ocrpi/main.go
*/

// Command ocrpi runs OCR-script source files and, with no arguments,
// drops into an interactive shell.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/jaddison06/ocrpi/eval"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/parser"
	"github.com/jaddison06/ocrpi/repl"
	"github.com/jaddison06/ocrpi/source"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `
   ___   ____ ____      _
  / _ \ / ___|  _ \ _ __(_)
 | | | | |   | |_) | '_ \ |
 | |_| | |___|  _ <| |_) | |
  \___/ \____|_| \_\ .__/|_|
                    |_|
`
	version = "v1.0.0"
	line    = "----------------------------------------------------------------"
	prompt  = "ocrpi >>> "
)

func main() {
	if len(os.Args) == 1 {
		repler := repl.NewRepl(banner, version, line, prompt)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
		return
	case "--version", "-v":
		showVersion()
		return
	}

	if len(os.Args) != 2 {
		redColor.Fprintf(os.Stderr, "[main] Usage: ocrpi <path>\n")
		os.Exit(int(faults.Main))
	}
	runFile(os.Args[1])
}

func showHelp() {
	cyanColor.Println("ocrpi - an OCR Exam Reference Language interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  ocrpi                 Start the interactive shell")
	yellowColor.Println("  ocrpi <path>.ocr      Run a script")
	yellowColor.Println("  ocrpi --help          Show this message")
	yellowColor.Println("  ocrpi --version       Show version information")
}

func showVersion() {
	cyanColor.Printf("ocrpi %s\n", version)
}

// runFile reads, parses, and evaluates path, exiting with int(subsystem)
// on any fault and 0 on a clean run. The subsystem numbering doubles as
// the process exit code, so a caller script can tell which stage failed
// without scraping stderr.
func runFile(path string) {
	defer func() {
		if r := recover(); r != nil {
			reportFault(r)
		}
	}()

	src := source.Load(path)

	p := parser.New(src)
	prog := p.Parse()
	if p.HasErrors() {
		for _, perr := range p.Errors {
			redColor.Fprintf(os.Stderr, "[parser] %s\n", perr)
		}
		os.Exit(int(faults.Parser))
	}

	e := eval.New(os.Stdout)
	e.Run(prog)
}

func reportFault(r any) {
	flt, ok := r.(*faults.Fault)
	if !ok {
		redColor.Fprintf(os.Stderr, "[%s] %v\n", faults.Main, r)
		os.Exit(int(faults.Main))
	}
	redColor.Fprintf(os.Stderr, "[%s] %s\n", flt.Subsystem, flt.Error())
	os.Exit(int(flt.Subsystem))
}
