package vtline

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var dbg = struct {
	sync.Once
	w   io.WriteCloser
	err error
}{}

func initDebug() {
	path := os.Getenv("VTLINE_DEBUG")
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		dbg.err = err
		return
	}
	dbg.w = f
}

func debugPrintf(format string, args ...interface{}) {
	dbg.Do(initDebug)
	if dbg.w == nil {
		return
	}
	fmt.Fprintf(dbg.w, format, args...)
}

func debugByte(b byte) string {
	if b < 0x20 {
		return "^" + string(rune(b+0x40))
	}
	if b == 0x7F {
		return "<del>"
	}
	if b > 0x7E {
		return fmt.Sprintf("<0x%02x>", b)
	}
	return string(rune(b))
}
