package vtline

// maxHist bounds the history ring's backing array (hist_buf, §3).
const maxHist = 1024

// noStep is the hist_step sentinel meaning "not walking": the next up arrow
// starts from the newest entry.
const noStep = -1

// history is the fixed-capacity circular store of NUL-terminated entries
// described in §4.4. Unlike the teacher's dynamically growing []string
// history, the ring itself is a fixed array; only readEntry allocates, to
// hand a copy of one entry to the caller.
//
// The spec disambiguates empty-vs-full rings via hist_begin/hist_end plus a
// buf[0]==0 check. This keeps an explicit used byte count for a cheap
// empty() test, but add() still enforces §4.4's own invariant that the
// ring never actually fills to capacity: a write that would leave
// hist_begin == hist_end evicts one more entry, so begin == end is always
// unambiguously "empty" wherever the rest of the type assumes it (see
// DESIGN.md, Open Questions).
type history struct {
	buf   [maxHist]byte
	begin int
	end   int
	used  int
	step  int
}

func (h *history) reset() {
	h.buf = [maxHist]byte{}
	h.begin, h.end, h.used = 0, 0, 0
	h.step = noStep
}

func (h *history) empty() bool {
	return h.used == 0
}

// entrySize returns the byte length (including the terminating NUL) of the
// entry starting at start.
func (h *history) entrySize(start int) int {
	capc := len(h.buf)
	n := 1
	for i := start; h.buf[i] != 0; i = (i + 1) % capc {
		n++
	}
	return n
}

// evictOne zeros the oldest entry and advances hist_begin past it.
func (h *history) evictOne() {
	if h.used == 0 {
		return
	}
	capc := len(h.buf)
	size := h.entrySize(h.begin)
	i := h.begin
	for k := 0; k < size; k++ {
		h.buf[i] = 0
		i = (i + 1) % capc
	}
	h.begin = i
	h.used -= size
	if h.used == 0 {
		h.begin, h.end = 0, 0
	}
}

// add appends line (NUL-terminated) to the ring, evicting the oldest
// entries forward as needed to make room (§4.4 Append). A line that could
// never fit even in an empty ring is silently dropped.
func (h *history) add(line []byte) {
	capc := len(h.buf)
	size := len(line) + 1
	if size >= capc {
		return
	}
	for h.used+size > capc {
		h.evictOne()
	}

	tail := capc - h.end
	if tail >= size {
		copy(h.buf[h.end:], line)
		h.buf[h.end+len(line)] = 0
	} else {
		copy(h.buf[h.end:], line[:tail])
		rem := line[tail:]
		copy(h.buf[:], rem)
		h.buf[len(rem)] = 0
	}
	h.end = (h.end + size) % capc
	h.used += size

	// A ring filled to exactly capacity has hist_begin == hist_end with
	// no free byte to tell "full" apart from "empty" by position alone
	// (§4.4). Evicting the oldest entry here restores a gap, so begin
	// == end continues to mean only "empty" everywhere else (prevEntry,
	// up, showAll).
	if h.begin == h.end {
		h.evictOne()
	}
	h.step = noStep
}

// prevEntry returns the start offset of the entry immediately before the
// entry boundary p (where p == hist_end means "before the newest entry").
// ok is false once p is already the oldest entry's start.
func (h *history) prevEntry(p int) (start int, ok bool) {
	if h.used == 0 || p == h.begin {
		return 0, false
	}
	capc := len(h.buf)
	i := (p - 1 + capc) % capc
	for i != h.begin && h.buf[(i-1+capc)%capc] != 0 {
		i = (i - 1 + capc) % capc
	}
	return i, true
}

// nextEntry returns the start of the entry following the one starting at
// p. atEnd is true once that walk would reach the newest-entry boundary,
// i.e. the caller should fall back to NONE.
func (h *history) nextEntry(p int) (next int, atEnd bool) {
	capc := len(h.buf)
	i := p
	for h.buf[i] != 0 {
		i = (i + 1) % capc
	}
	i = (i + 1) % capc
	if i == h.end {
		return 0, true
	}
	return i, false
}

// readEntry copies out the entry starting at start, excluding its NUL.
func (h *history) readEntry(start int) []byte {
	capc := len(h.buf)
	out := make([]byte, 0, maxLine)
	for i := start; h.buf[i] != 0; i = (i + 1) % capc {
		out = append(out, h.buf[i])
	}
	return out
}

// up implements Ctrl-P / up-arrow: step hist_step backward and replace the
// current line with that entry (§4.4 Up/down arrow integration).
func (h *history) up(l *lineBuffer, e *echoWriter) {
	if h.empty() {
		return
	}
	p := h.end
	if h.step != noStep {
		p = h.step
	}
	start, ok := h.prevEntry(p)
	if !ok {
		return
	}
	h.step = start
	l.replaceWith(e, h.readEntry(start))
}

// down implements Ctrl-N / down-arrow: step hist_step forward, or return to
// NONE and clear the line once the newest entry's boundary is passed.
func (h *history) down(l *lineBuffer, e *echoWriter) {
	if h.step == noStep {
		return
	}
	next, atEnd := h.nextEntry(h.step)
	if atEnd {
		h.step = noStep
		l.replaceWith(e, nil)
		return
	}
	h.step = next
	l.replaceWith(e, h.readEntry(next))
}

// showAll prints every stored entry newest-first (§4.9's "history"
// command). skipNewest omits the most recent entry, used when the
// "history" line itself has just been recorded.
func (h *history) showAll(e *echoWriter, skipNewest bool) {
	if h.empty() {
		return
	}
	p := h.end
	if skipNewest {
		prev, ok := h.prevEntry(p)
		if !ok {
			return
		}
		p = prev
	}
	for {
		start, ok := h.prevEntry(p)
		if !ok {
			break
		}
		e.write(h.readEntry(start))
		e.writeString("\r\n")
		p = start
	}
}
