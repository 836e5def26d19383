package docx

import (
	"regexp"
	"strings"

	"github.com/rinojames007/math2doc/latex"
)

type InlineKind int

const (
	TextInline InlineKind = iota
	MathInline
)

// Inline is one element of a paragraph: a plain-text run or a math zone
// holding a parsed node sequence.
type Inline struct {
	Kind InlineKind
	Text string
	Math []*latex.Node
}

type Paragraph struct {
	Heading bool
	Inlines []Inline
}

// Document accumulates paragraphs of mixed text and math before packing.
type Document struct {
	Paragraphs []Paragraph
}

func New() *Document {
	return &Document{}
}

// inlineMath matches one non-nesting $...$ segment. An odd number of $ on a
// line is an upstream contract violation and is not repaired here: the last
// unpaired delimiter simply stays literal text.
var inlineMath = regexp.MustCompile(`\$[^$]*\$`)

// AddLine appends one line of extracted text as a paragraph. A leading "## "
// marks a heading: headings are rendered bold at a larger size and are never
// split for math. Body lines alternate plain-text runs and math zones in
// source order.
func (d *Document) AddLine(line string) {
	if rest, ok := strings.CutPrefix(line, "## "); ok {
		d.Paragraphs = append(d.Paragraphs, Paragraph{
			Heading: true,
			Inlines: []Inline{{Kind: TextInline, Text: rest}},
		})

		return
	}

	var inlines []Inline
	last := 0

	for _, m := range inlineMath.FindAllStringIndex(line, -1) {
		if m[0] > last {
			inlines = append(inlines, Inline{Kind: TextInline, Text: line[last:m[0]]})
		}

		inlines = append(inlines, Inline{Kind: MathInline, Math: latex.Parse(line[m[0]+1 : m[1]-1])})
		last = m[1]
	}

	if last < len(line) || len(inlines) == 0 {
		inlines = append(inlines, Inline{Kind: TextInline, Text: line[last:]})
	}

	d.Paragraphs = append(d.Paragraphs, Paragraph{Inlines: inlines})
}

// AddText splits a whole extracted blob into lines and appends each one.
func (d *Document) AddText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		d.AddLine(line)
	}
}
