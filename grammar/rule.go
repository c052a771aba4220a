package grammar

// rule is a single production of a straight-line grammar: either a
// terminal (isBase, holding a single byte), or a concatenation of two
// earlier rule indices.
type rule struct {
	isBase bool
	value  byte
	first  int
	second int
}

// RuleSet stores the rules of a straight-line grammar for generating a
// single string. Rule indices are assigned in construction order starting
// at 0, and a non-base rule may only reference rules added before it, so
// the rule graph is always a DAG by construction.
type RuleSet struct {
	rules []rule
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// AddTerminal appends a terminal rule expanding to the single byte symbol
// and returns its index.
func (rs *RuleSet) AddTerminal(symbol byte) int {
	rs.rules = append(rs.rules, rule{isBase: true, value: symbol})
	return len(rs.rules) - 1
}

// AddRule appends a rule expanding to the concatenation of the strings
// generated by rule left followed by rule right, and returns its index.
// left and right must already be valid indices into rs.
func (rs *RuleSet) AddRule(left, right int) int {
	rs.rules = append(rs.rules, rule{first: left, second: right})
	return len(rs.rules) - 1
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// validate checks that finalRule is in range and that every rule only
// references rule indices strictly smaller than its own, which rules out
// both dangling references and cycles in a single scan.
func (rs *RuleSet) validate(finalRule int) error {
	if finalRule < 0 || finalRule >= len(rs.rules) {
		return ErrIllFormedGrammar
	}
	for i, r := range rs.rules {
		if r.isBase {
			continue
		}
		if r.first < 0 || r.first >= i || r.second < 0 || r.second >= i {
			return ErrIllFormedGrammar
		}
	}
	return nil
}

// lengths returns, for every rule index, the length of the string that
// rule generates, via a single bottom-up pass since rules only reference
// earlier ones.
func (rs *RuleSet) lengths() []int {
	lens := make([]int, len(rs.rules))
	for i, r := range rs.rules {
		if r.isBase {
			lens[i] = 1
		} else {
			lens[i] = lens[r.first] + lens[r.second]
		}
	}
	return lens
}

// Decompress reconstructs the string generated by finalRule. It exists for
// testing small grammars; production code never expands a grammar back to
// its text, since that defeats the point of querying it compressed.
func (rs *RuleSet) Decompress(finalRule int) (string, error) {
	if finalRule < 0 || finalRule >= len(rs.rules) {
		return "", ErrOutOfRange
	}
	memo := make([]string, len(rs.rules))
	var build func(i int) string
	build = func(i int) string {
		if memo[i] != "" {
			return memo[i]
		}
		r := rs.rules[i]
		var s string
		if r.isBase {
			s = string(r.value)
		} else {
			s = build(r.first) + build(r.second)
		}
		memo[i] = s
		return s
	}
	return build(finalRule), nil
}
