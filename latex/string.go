package latex

// String flattens a node sequence back to plain text in reading order. It is
// a lossy debugging and fallback representation: structure markers are
// reduced to conventional characters.
func String(nodes []*Node) (out string) {
	for _, node := range nodes {
		switch node.Kind {
		case RunKind:
			out += node.Text
		case FractionKind:
			out += String(node.Numerator) + "/" + String(node.Denominator)
		case RadicalKind:
			out += "√" + String(node.Radicand)
		case ScriptedKind:
			out += String(node.Base) + String(node.Script)
		}
	}

	return
}
