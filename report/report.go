// Package report prints user-facing status messages.
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func RecordAdded(kind string) {
	pterm.Info.Printfln("%s added successfully", kind)
}

func RecordNotFound(kind, id string) {
	pterm.Warning.Printfln("%s %q not found", kind, id)
}

func Warn(msg string) {
	pterm.Warning.Println(msg)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
