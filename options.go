package vtline

// Option configures an Engine at construction time, following the same
// functional-options shape the teacher uses for Prompt.
type Option interface {
	apply(e *Engine)
}

type promptOption struct {
	prompt []byte
}

func (o promptOption) apply(e *Engine) {
	e.prompt = o.prompt
}

// WithPrompt sets the prompt string emitted whenever a fresh prompt line
// is needed. Unlike SetPrompt, it only stores the prompt at construction
// time; the caller's first emitted prompt happens on the next submit (or
// an explicit SetPrompt call), not during New.
func WithPrompt(prompt string) Option {
	return promptOption{prompt: []byte(prompt)}
}

type callbackOption struct {
	fn func(ParsedLine)
}

func (o callbackOption) apply(e *Engine) {
	e.callback = o.fn
}

// WithCallback registers the parse sink invoked on successful line
// submission. Equivalent to calling SetCallback after New.
func WithCallback(fn func(ParsedLine)) Option {
	return callbackOption{fn: fn}
}

type levelOption struct {
	list TokenList
}

func (o levelOption) apply(e *Engine) {
	e.levels = append(e.levels, o.list)
}

// WithNestedLevel pushes an additional grammar level onto the engine's
// persistent grammar stack at construction time, for callers that start
// in a sub-mode rather than at the grammar root (§3, current_level).
func WithNestedLevel(list TokenList) Option {
	return levelOption{list: list}
}
