// Package entities contains domain entities used across the application.
package entities

// DefaultLevelName is the level used when vocabulary is not partitioned.
const DefaultLevelName = "Level 1"

// Word is a single vocabulary pair: a source-language term and its
// target-language translation.
type Word struct {
	Term        string // source-language word
	Translation string // target-language word(s)
}

// Level is a named partition of vocabulary of a given difficulty.
type Level struct {
	Name  string
	Words []Word
}

// Translations returns the distinct translations of the level in load order.
func (l Level) Translations() []string {
	seen := make(map[string]struct{}, len(l.Words))
	out := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if _, ok := seen[w.Translation]; ok {
			continue
		}
		seen[w.Translation] = struct{}{}
		out = append(out, w.Translation)
	}
	return out
}
