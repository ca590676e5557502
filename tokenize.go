package vtline

import "strconv"

// walker drives the grammar descent described in §4.8, shared by both the
// strict parse path and the silent completion-context path.
type walker struct {
	dict       TokenDict
	stack      []TokenList
	pending    ArgType
	pendingSub TokenList
	done       bool
	lastEntry  *TokenEntry
	tokens     []int
	args       argWriter
}

func newWalker(root TokenList, dict TokenDict) *walker {
	return &walker{dict: dict, stack: []TokenList{root}}
}

func (w *walker) top() TokenList {
	return w.stack[len(w.stack)-1]
}

func (w *walker) push(list TokenList) {
	if len(w.stack) >= maxLevels {
		panic("vtline: grammar nesting exceeds maxLevels")
	}
	w.stack = append(w.stack, list)
}

// step advances the walker by one word. A non-zero ParseError means the
// word was rejected; the caller decides whether that is fatal (parse mode,
// §7) or a silent "no completion" signal (completion mode, §4.8).
func (w *walker) step(word string) ParseError {
	if w.pending != ArgNone {
		return w.stepArg(word)
	}
	if w.done {
		return newError(TooManyArgs)
	}

	idx, ok := matchToken(w.top(), w.dict, word)
	if !ok {
		return newError(InvalidCommand)
	}
	entry := &w.top()[idx]
	w.lastEntry = entry

	if entry.ArgType == ArgHelpOnly {
		w.tokens = append(w.tokens, entry.ID)
		return ParseError{}
	}

	w.tokens = append(w.tokens, entry.ID)
	switch {
	case entry.ArgType != ArgNone:
		w.pending = entry.ArgType
		if entry.ArgType == ArgToken {
			w.pendingSub = entry.SubTokens
		}
	case len(entry.SubTokens) > 0:
		w.push(entry.SubTokens)
	default:
		w.done = true
	}
	return ParseError{}
}

func (w *walker) stepArg(word string) ParseError {
	kind := w.pending
	sub := w.pendingSub
	w.pending = ArgNone
	w.pendingSub = nil

	switch kind {
	case ArgInteger:
		v, err := strconv.ParseInt(word, 0, 64)
		if err != nil {
			return newError(InvalidValue)
		}
		off := w.args.putInt(v)
		w.tokens = append(w.tokens, TagInteger, off)
	case ArgFloat:
		v, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return newError(InvalidValue)
		}
		off := w.args.putFloat(v)
		w.tokens = append(w.tokens, TagFloat, off)
	case ArgString:
		off := w.args.putString([]byte(word))
		w.tokens = append(w.tokens, TagString, off)
	case ArgToken:
		idx, ok := matchToken(sub, w.dict, word)
		if !ok {
			return newError(InvalidValue)
		}
		entry := &sub[idx]
		w.lastEntry = entry
		w.tokens = append(w.tokens, entry.ID)
	}
	// An argument position is always a leaf: no grammar descends further
	// after its value is consumed.
	w.done = true
	return ParseError{}
}

// tokenize drives the walker to completion in strict parse mode (§4.8's
// "Terminal conditions"), producing the parsed line delivered to the
// callback on success.
func tokenize(root TokenList, dict TokenDict, words []string) (ParsedLine, ParseError) {
	w := newWalker(root, dict)
	for _, word := range words {
		if err := w.step(word); err.Kind != NoError {
			return ParsedLine{}, err
		}
	}
	if w.pending != ArgNone {
		return ParsedLine{}, newError(MissingArgument)
	}
	tokens := append(append([]int{}, w.tokens...), 0)
	return ParsedLine{
		Tokens:     tokens,
		ArgStorage: w.args.buf[:w.args.n],
		LastEntry:  w.lastEntry,
	}, ParseError{}
}

// completionResult's pendingArg and candidates describe what TAB should
// offer next, the completion-mode terminal conditions of §4.8.
type completionResult struct {
	ok         bool
	pendingArg ArgType
	candidates TokenList
	lastEntry  *TokenEntry
}

// completionContext silently drives the walker over words, never failing
// loudly (§4.8, §7: "all errors in ... completion mode are suppressed").
func completionContext(root TokenList, dict TokenDict, words []string) completionResult {
	w := newWalker(root, dict)
	for _, word := range words {
		if err := w.step(word); err.Kind != NoError {
			return completionResult{ok: false}
		}
	}
	if w.pending != ArgNone {
		sub := w.pendingSub
		return completionResult{ok: true, pendingArg: w.pending, candidates: sub, lastEntry: w.lastEntry}
	}
	return completionResult{ok: true, candidates: w.top(), lastEntry: w.lastEntry}
}
