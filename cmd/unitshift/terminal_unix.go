//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func windowColumns(file *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
