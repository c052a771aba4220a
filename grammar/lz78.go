package grammar

const alphabetSize = 26

// dictTrie tracks, for each dictionary node (a rule index, or root), which
// rule a further character extends it to. Both LZ78 and LZW parse their
// input by walking this trie.
type dictTrie struct {
	children map[int][]int
}

func newDictTrie() *dictTrie {
	return &dictTrie{children: make(map[int][]int)}
}

func newTrieRow() []int {
	row := make([]int, alphabetSize)
	for i := range row {
		row[i] = -1
	}
	return row
}

func (t *dictTrie) childOf(node, c int) int {
	row, ok := t.children[node]
	if !ok {
		return -1
	}
	return row[c]
}

func (t *dictTrie) setChild(node, c, rule int) {
	row, ok := t.children[node]
	if !ok {
		row = newTrieRow()
	}
	row[c] = rule
	t.children[node] = row
}

// root is the sentinel dictionary node representing the empty prefix.
const root = -1

// LZ78 builds a straight-line grammar for s, whose bytes must lie in A-Z,
// by LZ78 dictionary parsing: the input is scanned for the longest
// dictionary-known prefix, the prefix extended by one new character is
// added as a fresh dictionary entry (a rule concatenating the matched
// entry and a new terminal), and the sequence of entries produced is
// concatenated into the grammar's final rule. It returns the built rule
// set and the index of that final rule.
func LZ78(s string) (*RuleSet, int, error) {
	rs := NewRuleSet()
	trie := newDictTrie()
	currentEntry := root
	lastStringEntry := -1

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return nil, 0, ErrIllFormedGrammar
		}
		c := int(s[i] - 'A')

		if next := trie.childOf(currentEntry, c); next != -1 && i+1 != len(s) {
			currentEntry = next
			continue
		}

		charRule := rs.AddTerminal(s[i])
		dictEntry := charRule
		if currentEntry != root {
			dictEntry = rs.AddRule(currentEntry, charRule)
		}
		trie.setChild(currentEntry, c, dictEntry)
		currentEntry = root

		if lastStringEntry == -1 {
			lastStringEntry = dictEntry
		} else {
			lastStringEntry = rs.AddRule(lastStringEntry, dictEntry)
		}
	}
	if lastStringEntry == -1 {
		return nil, 0, ErrIllFormedGrammar
	}
	return rs, lastStringEntry, nil
}
