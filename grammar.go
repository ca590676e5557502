package vtline

// ArgType names the legal argument kinds a grammar entry may demand (§3).
type ArgType int

const (
	ArgNone ArgType = iota
	ArgInteger
	ArgFloat
	ArgString
	ArgToken
	ArgHelpOnly
)

// TokenEntry is one node of the caller-supplied grammar tree: a token ID,
// an optional help string, an optional argument type, and an optional
// child list (either the next grammar level, or, when ArgType == ArgToken,
// the enumerated legal values for that single argument).
type TokenEntry struct {
	ID        int
	Help      string
	ArgType   ArgType
	SubTokens TokenList
}

// TokenList is an ordered list of token entries at one grammar level. The
// teacher's C-derived sentinel-terminated array becomes a plain Go slice;
// there is no token ID 0 terminator to skip.
type TokenList []TokenEntry

// TokenDict maps a token ID to its display string. It is borrowed,
// immutable, and shared by every grammar level.
type TokenDict map[int]string

// maxLevels bounds how deep the grammar stack may descend (§3). Exceeding
// it is a grammar-authoring bug, not a runtime condition to recover from.
const maxLevels = 8
