package mxml_marks

// DynamicTokens is the closed list of dynamic mark tokens, in vocabulary
// order.
var DynamicTokens = []string{
	"p", "pp", "ppp", "pppp", "ppppp", "pppppp",
	"f", "ff", "fff", "ffff", "fffff", "ffffff",
	"mp", "mf", "sf", "sfp", "sfpp", "fp", "rf", "rfz", "sfz", "sffz", "fz",
	"n", "pf", "sfzp", // musicxml 3.1
	"other-dynamics", // non-empty
}

// OtherDynamicsToken carries free dynamic text that is none of the closed
// tokens.
const OtherDynamicsToken = "other-dynamics"

var dynamicTokenSet map[string]bool
var dynamicsTree *RuneNode

func init() {
	dynamicTokenSet = make(map[string]bool, len(DynamicTokens))
	literals := make([]string, 0, len(DynamicTokens))
	for _, token := range DynamicTokens {
		dynamicTokenSet[token] = true
		if token != OtherDynamicsToken {
			literals = append(literals, token)
		}
	}
	dynamicsTree = createRuneTree(literals)
}

// IsDynamicToken reports whether token is in the dynamics vocabulary.
func IsDynamicToken(token string) bool {
	return dynamicTokenSet[token]
}

// SplitDynamics splits a dynamic string into known dynamic tokens, longest
// match first, so compound texts like "fffp" scan as their components. The
// boolean reports whether the whole input was consumed.
func SplitDynamics(text string) ([]string, bool) {
	runes := []rune(text)
	parts := make([]string, 0, 2)
	for idx := 0; idx < len(runes); {
		node := dynamicsTree
		lastTerminal := -1
		for next := idx; next < len(runes); next++ {
			child, terminal := node.evaluate(runes[next])
			if child == nil {
				break
			}
			if terminal {
				lastTerminal = next
			}
			node = child
		}
		if lastTerminal < 0 {
			return parts, false
		}
		parts = append(parts, string(runes[idx:lastTerminal+1]))
		idx = lastTerminal + 1
	}
	return parts, len(parts) > 0
}
