package vtline

import (
	"regexp"
	"strconv"
)

// mockTerm is a minimal virtual terminal adapted from the teacher's own
// mockTerm (prompt_test.go): it tracks only a single visible line plus a
// cursor offset, since this engine has no multi-line or width-aware
// rendering model to reproduce (§8 property 6 only requires prompt ||
// line_buf plus cursor position).
type mockTerm struct {
	contents []byte
	cursor   int
}

var csiRE = regexp.MustCompile(`^\x1b\[(\d*)([A-Za-z])`)

func (m *mockTerm) Write(p []byte) {
	for len(p) > 0 {
		switch p[0] {
		case '\r':
			m.cursor = 0
			p = p[1:]
			continue
		case '\n':
			m.contents = nil
			m.cursor = 0
			p = p[1:]
			continue
		}
		if loc := csiRE.FindSubmatch(p); loc != nil {
			n := 1
			if len(loc[1]) > 0 {
				n, _ = strconv.Atoi(string(loc[1]))
			}
			switch loc[2][0] {
			case 'C':
				m.cursor += n
			case 'D':
				m.cursor -= n
			case 'J':
				m.contents = nil
				m.cursor = 0
			case 'H':
				m.cursor = 0
			}
			p = p[len(loc[0]):]
			continue
		}
		b := p[0]
		switch {
		case m.cursor == len(m.contents):
			m.contents = append(m.contents, b)
		case m.cursor < len(m.contents):
			m.contents[m.cursor] = b
		}
		m.cursor++
		p = p[1:]
	}
}
