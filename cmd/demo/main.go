// Command demo is an interactive host for the vtline engine: it wires a
// small example grammar (show/set/history/help), exits if stdin is not a
// terminal, otherwise puts stdin into raw mode and feeds bytes to the
// engine one at a time.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mtessier/vtline"
)

const (
	tokShow = iota + 1
	tokShutdown
	tokSet
	tokSetLevel
	tokName
)

var dict = vtline.TokenDict{
	tokShow:     "show",
	tokShutdown: "shutdown",
	tokSet:      "set",
	tokSetLevel: "level",
	tokName:     "name",
}

var grammar = vtline.TokenList{
	{ID: tokShow, Help: "print version"},
	{ID: tokShutdown, Help: "power off"},
	{
		ID:   tokSet,
		Help: "configure a value",
		SubTokens: vtline.TokenList{
			{ID: tokSetLevel, Help: "set the log level", ArgType: vtline.ArgInteger},
			{ID: tokName, Help: "set the device name", ArgType: vtline.ArgString},
		},
	},
}

func dispatch(p vtline.ParsedLine) {
	if len(p.Tokens) == 0 {
		return
	}
	switch p.Tokens[0] {
	case tokShow:
		fmt.Printf("\r\nvtline demo v0\r\n")
	case tokShutdown:
		fmt.Printf("\r\n(pretending to power off)\r\n")
	case tokSet:
		if len(p.Tokens) < 5 {
			return
		}
		switch p.Tokens[1] {
		case tokSetLevel:
			fmt.Printf("\r\nlevel = %d\r\n", vtline.DecodeInt(p.ArgStorage, p.Tokens[3]))
		case tokName:
			fmt.Printf("\r\nname = %q\r\n", vtline.DecodeString(p.ArgStorage, p.Tokens[3]))
		}
	}
}

func main() {
	fd := int(os.Stdin.Fd())

	if !isatty.IsTerminal(uintptr(fd)) {
		fmt.Fprintln(os.Stderr, "demo: stdin is not a terminal, exiting")
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	print := func(ctx interface{}, p []byte) {
		os.Stdout.Write(p)
	}
	e := vtline.New(grammar, dict, print, nil, vtline.WithCallback(dispatch))
	e.SetPrompt("> ")

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		if e.Feed(buf[0]) == vtline.Exit {
			fmt.Print("\r\n")
			return
		}
	}
}
