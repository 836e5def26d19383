package latex

type Kind int

const (
	RunKind = iota
	FractionKind
	RadicalKind
	ScriptedKind
)

type ScriptKind int

const (
	Superscript ScriptKind = iota
	Subscript
)

// Node is a single element of a parsed math expression. Kind decides which
// fields are meaningful: RunKind carries Text, the structural kinds carry
// their child sequences. Children are fully parsed node sequences, never raw
// source, and a node is not modified once built.
type Node struct {
	Kind Kind
	Text string

	Numerator   []*Node
	Denominator []*Node

	Radicand []*Node
	Degree   []*Node // empty means square root

	Base       []*Node
	ScriptKind ScriptKind
	Script     []*Node
}
