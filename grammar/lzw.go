package grammar

// LZW builds a straight-line grammar for s, whose bytes must lie in A-Z,
// by LZW dictionary parsing: unlike LZ78, the dictionary is pre-seeded
// with one terminal rule per alphabet letter, so every new entry is a
// concatenation rule (a matched entry plus the pre-seeded terminal of the
// next letter) and no further terminal rules are ever created. The sequence of entries
// produced is concatenated into the grammar's final rule.
func LZW(s string) (*RuleSet, int, error) {
	rs := NewRuleSet()
	trie := newDictTrie()
	alphabetRule := make([]int, alphabetSize)
	for i := 0; i < alphabetSize; i++ {
		alphabetRule[i] = rs.AddTerminal(byte('A' + i))
		trie.setChild(root, i, alphabetRule[i])
	}

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

		dictChar := alphabetRule[c]
		dictEntry := dictChar
		if currentEntry != root {
			dictEntry = rs.AddRule(currentEntry, dictChar)
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
