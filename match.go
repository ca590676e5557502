package vtline

import "strings"

// matchToken resolves word against list by exact-or-unique-prefix match
// (§4.7). An exact match always wins, even when word is also a prefix of
// some other entry's display string.
func matchToken(list TokenList, dict TokenDict, word string) (int, bool) {
	prefixIdx := -1
	prefixCount := 0
	for i, e := range list {
		disp := dict[e.ID]
		if disp == word {
			return i, true
		}
		if word != "" && strings.HasPrefix(disp, word) {
			prefixIdx = i
			prefixCount++
		}
	}
	if prefixCount == 1 {
		return prefixIdx, true
	}
	return -1, false
}

// matchPrefix returns every entry in list whose display string starts with
// partial, used by TAB completion's multi-match listing (§4.8).
func matchPrefix(list TokenList, dict TokenDict, partial string) []TokenEntry {
	var out []TokenEntry
	for _, e := range list {
		if strings.HasPrefix(dict[e.ID], partial) {
			out = append(out, e)
		}
	}
	return out
}
