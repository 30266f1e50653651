/*
File    : ocrpi/source/source.go
*/

// Package source is the interpreter's sole filesystem touchpoint:
// reading a script file and checking its extension before anything
// else (lexer, parser) ever sees it.
package source

import (
	"os"
	"path/filepath"

	"github.com/jaddison06/ocrpi/faults"
)

// Ext is the only extension a runnable script may use. ".ocrx" is
// reserved by the language for a future bytecode/compiled form and is
// rejected outright rather than silently treated as source text.
const Ext = ".ocr"

const reservedExt = ".ocrx"

// Load reads path and returns its contents, raising a Main-subsystem
// fault for a missing file, an unreadable file, or an extension other
// than .ocr.
func Load(path string) string {
	switch filepath.Ext(path) {
	case reservedExt:
		faults.RaiseUnpositioned(faults.Main, "'%s' has a reserved .ocrx extension; only .ocr scripts can be run", path)
	case Ext:
		// ok
	default:
		faults.RaiseUnpositioned(faults.Main, "'%s' is not a .ocr script", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		faults.RaiseUnpositioned(faults.Main, "Couldn't read '%s': %s", path, err)
	}
	return string(data)
}
