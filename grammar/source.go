package grammar

// GrammarSource is the boundary to any component that can hand the core a
// complete rule set plus the index of its final rule: a hand-built
// grammar, an LZ78 or LZW builder, or a reader for some other
// dictionary-compressed format. Ingestion formats the core does not ship
// a decoder for (for instance UNIX-compress .Z streams) are expected to
// implement this interface externally rather than be added to this
// package.
type GrammarSource interface {
	Grammar() (rs *RuleSet, finalRule int, err error)
}

// LZ78Source and LZWSource adapt the LZ78 and LZW builders to
// GrammarSource, for callers that select a compression scheme
// dynamically.
type LZ78Source struct{ Text string }

func (s LZ78Source) Grammar() (*RuleSet, int, error) { return LZ78(s.Text) }

type LZWSource struct{ Text string }

func (s LZWSource) Grammar() (*RuleSet, int, error) { return LZW(s.Text) }
