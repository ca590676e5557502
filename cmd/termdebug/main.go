// Command termdebug runs the vtline demo (or any other command) under a
// pty and logs every byte crossing stdin/stdout, for inspecting exactly
// what a real terminal sends for a given keypress against what escape.go
// and bind.go expect (§4.3, §6).
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

func debugCopy(dst io.Writer, src io.Reader, debug io.Writer, name string) {
	buf := make([]byte, 4096)
	for {
		nr, errR := src.Read(buf)
		if nr > 0 {
			fmt.Fprintf(debug, "%s: %q\n", name, buf[:nr])
			nw, errW := dst.Write(buf[:nr])
			if nw < 0 || nr < nw {
				fmt.Fprintf(debug, "%s: invalid write (nr=%d, nw=%d)\n", name, nr, nw)
			}
			if errW != nil {
				fmt.Fprintf(debug, "%s: write error: %+v\n", name, errW)
				break
			}
			if nr != nw {
				fmt.Fprintf(debug, "%s: short write (nr=%d, nw=%d)\n", name, nr, nw)
				break
			}
		}
		if errR != nil {
			if errR != io.EOF {
				fmt.Fprintf(debug, "%s: read error: %+v\n", name, errR)
			}
			break
		}
	}
}

func main() {
	// With no command given, default to the vtline demo itself — the
	// usual reason to reach for this tool is "what did the terminal just
	// send the demo." Any other command (e.g. a different vtline host)
	// can still be named explicitly.
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"go", "run", "./cmd/demo"}
	}
	c := exec.Command(args[0], args[1:]...)

	logPath := os.Getenv("VTLINE_DEBUG")
	if logPath == "" {
		logPath = "vtline-termdebug.log"
	}
	debug, err := os.Create(logPath)
	if err != nil {
		panic(err)
	}
	defer debug.Close()

	// Start the command with a pty.
	ptmx, err := pty.Start(c)
	if err != nil {
		panic(err)
	}
	// Make sure to close the pty at the end.
	defer func() { _ = ptmx.Close() }() // Best effort.

	// Handle pty size.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				log.Printf("error resizing pty: %s", err)
			}
		}
	}()
	ch <- syscall.SIGWINCH                        // Initial resize.
	defer func() { signal.Stop(ch); close(ch) }() // Cleanup signals when done.

	// Set stdin in raw mode.
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		panic(err)
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }() // Best effort.

	// Copy stdin to the pty and the pty to stdout.
	// NOTE: The goroutine will keep reading until the next keystroke before returning.
	go func() {
		debugCopy(ptmx, os.Stdin, debug, "stdin")
	}()

	debugCopy(os.Stdout, ptmx, debug, "stdout")
}
