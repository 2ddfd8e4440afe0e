package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// terminalWidth returns the column count of the terminal behind writer, or 0
// when writer is not a terminal.
func terminalWidth(writer io.Writer) int {
	file, ok := writer.(*os.File)
	if !ok || !isTerminal(writer) {
		return 0
	}
	return windowColumns(file)
}
