package latex

import "strings"

// Parse converts a math expression written in a restricted LaTeX dialect
// (\frac, \sqrt, ^, _, the symbol table and plain characters) into an
// ordered sequence of nodes. It is a total function: unrecognized or
// malformed input degrades to literal runs instead of failing, so a broken
// expression still renders as visible text.
func Parse(expr string) []*Node {
	p := &parser{src: []rune(expr)}
	return p.parse()
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) parse() []*Node {
	var nodes []*Node

	for p.pos < len(p.src) {
		switch r := p.src[p.pos]; r {
		case ' ':
			// math mode is whitespace-insensitive
			p.pos++
		case '^', '_':
			p.pos++
			rest, node := p.script(nodes, r)
			nodes = append(rest, node)
		case '\\':
			nodes = append(nodes, p.command())
		case '{', '}':
			// stray group markers, groups that matter are consumed by unit
			p.pos++
		default:
			p.pos++
			nodes = append(nodes, &Node{Kind: RunKind, Text: string(r)})
		}
	}

	return nodes
}

// script wraps the most recent node into a scripted node, consuming the next
// unit as the script content. A script with nothing before it gets an empty
// run as base.
func (p *parser) script(nodes []*Node, op rune) ([]*Node, *Node) {
	kind := Superscript
	if op == '_' {
		kind = Subscript
	}

	base := &Node{Kind: RunKind}
	if n := len(nodes); n > 0 {
		base, nodes = nodes[n-1], nodes[:n-1]
	}

	return nodes, &Node{
		Kind:       ScriptedKind,
		Base:       []*Node{base},
		ScriptKind: kind,
		Script:     Parse(p.unit()),
	}
}

// command reads an escape-marker command at the cursor. The structural
// commands are matched by exact prefix and consume their operands, anything
// else is a symbol lookup with the raw command text as visible fallback.
func (p *parser) command() *Node {
	if p.consume("\\frac") {
		num := Parse(p.unit())
		den := Parse(p.unit())
		return &Node{Kind: FractionKind, Numerator: num, Denominator: den}
	}

	if p.consume("\\sqrt") {
		return &Node{Kind: RadicalKind, Radicand: Parse(p.unit())}
	}

	name := p.commandToken()
	if sym, ok := Symbols[name]; ok && sym != "" {
		return &Node{Kind: RunKind, Text: sym}
	}

	return &Node{Kind: RunKind, Text: name}
}

// unit extracts the next operand for a structural command or script: a
// brace-delimited group, a whole command token, or a single character. The
// returned text is re-parsed by the caller, so nested structures compose
// without special cases.
func (p *parser) unit() string {
	if p.pos >= len(p.src) {
		return ""
	}

	switch p.src[p.pos] {
	case '{':
		depth := 0
		for i := p.pos; i < len(p.src); i++ {
			switch p.src[i] {
			case '{':
				depth++
			case '}':
				depth--
			}

			if depth == 0 {
				content := string(p.src[p.pos+1 : i])
				p.pos = i + 1
				return content
			}
		}

		// unbalanced group, consume the brace and move on
		p.pos++
		return ""
	case '\\':
		return p.commandToken()
	default:
		p.pos++
		return string(p.src[p.pos-1])
	}
}

// commandToken consumes the escape marker and the alphabetic run after it.
func (p *parser) commandToken() string {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}

	return string(p.src[start:p.pos])
}

// consume advances past prefix if the source at the cursor starts with it.
func (p *parser) consume(prefix string) bool {
	if !strings.HasPrefix(string(p.src[p.pos:]), prefix) {
		return false
	}

	p.pos += len(prefix)
	return true
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
