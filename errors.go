package vtline

// ErrorKind names the error taxonomy of §7. Every kind except
// ESCAPE_OVERFLOW is surfaced by printing a single line to the sink and
// aborting the current line; ESCAPE_OVERFLOW is silent by design.
type ErrorKind int

const (
	NoError ErrorKind = iota
	UnmatchedQuote
	TooManyWords
	InvalidCommand
	InvalidValue
	MissingArgument
	TooManyArgs
	EscapeOverflow
)

// ParseError is a value error: the engine never panics on malformed input,
// only on misconfiguration (a nil print sink, a grammar deeper than
// maxLevels).
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e ParseError) Error() string {
	return e.Message
}

var errorText = map[ErrorKind]string{
	UnmatchedQuote:  "Unmatched quote.",
	TooManyWords:    "Too many words.",
	InvalidCommand:  "Invalid command.",
	InvalidValue:    "Invalid value.",
	MissingArgument: "Missing argument.",
	TooManyArgs:     "Too many arguments.",
}

func newError(kind ErrorKind) ParseError {
	return ParseError{Kind: kind, Message: errorText[kind]}
}
