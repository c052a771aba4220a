package grammar

import "errors"

var (
	// ErrIllFormedGrammar is returned when a RuleSet has a dangling rule
	// reference, a cyclic reference, or an invalid final rule index.
	ErrIllFormedGrammar = errors.New("grammar: ill-formed rule set")
	// ErrOutOfRange is returned when a rule index falls outside the rule set.
	ErrOutOfRange = errors.New("grammar: index out of range")
)
