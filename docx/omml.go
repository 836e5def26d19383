package docx

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rinojames007/math2doc/latex"
)

// renderMath writes one math zone as an Office Math (OMML) oMath element.
// The mapping is structural one-to-one: run -> m:r, fraction -> m:f,
// radical -> m:rad, scripted -> m:sSup / m:sSub.
func renderMath(w io.Writer, nodes []*latex.Node) error {
	if _, err := fmt.Fprint(w, "<m:oMath>"); err != nil {
		return err
	}

	if err := renderNodes(w, nodes); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</m:oMath>")
	return err
}

func renderNodes(w io.Writer, nodes []*latex.Node) error {
	for _, node := range nodes {
		if err := renderNode(w, node); err != nil {
			return err
		}
	}

	return nil
}

func renderNode(w io.Writer, node *latex.Node) error {
	switch node.Kind {
	case latex.RunKind:
		return renderMathRun(w, node.Text)
	case latex.FractionKind:
		return renderFraction(w, node)
	case latex.RadicalKind:
		return renderRadical(w, node)
	case latex.ScriptedKind:
		return renderScripted(w, node)
	default:
		return nil
	}
}

func renderMathRun(w io.Writer, text string) error {
	if _, err := fmt.Fprint(w, `<m:r><m:t xml:space="preserve">`); err != nil {
		return err
	}

	if err := xml.EscapeText(w, []byte(text)); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</m:t></m:r>")
	return err
}

func renderFraction(w io.Writer, node *latex.Node) error {
	if _, err := fmt.Fprint(w, "<m:f>"); err != nil {
		return err
	}

	if err := renderSlot(w, "m:num", node.Numerator); err != nil {
		return err
	}

	if err := renderSlot(w, "m:den", node.Denominator); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</m:f>")
	return err
}

func renderRadical(w io.Writer, node *latex.Node) error {
	if _, err := fmt.Fprint(w, "<m:rad>"); err != nil {
		return err
	}

	// an empty degree slot means square root, hide it
	if len(node.Degree) == 0 {
		if _, err := fmt.Fprint(w, `<m:radPr><m:degHide m:val="1"/></m:radPr><m:deg/>`); err != nil {
			return err
		}
	} else {
		if err := renderSlot(w, "m:deg", node.Degree); err != nil {
			return err
		}
	}

	if err := renderSlot(w, "m:e", node.Radicand); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</m:rad>")
	return err
}

func renderScripted(w io.Writer, node *latex.Node) error {
	wrap, slot := "m:sSup", "m:sup"
	if node.ScriptKind == latex.Subscript {
		wrap, slot = "m:sSub", "m:sub"
	}

	if _, err := fmt.Fprint(w, "<"+wrap+">"); err != nil {
		return err
	}

	if err := renderSlot(w, "m:e", node.Base); err != nil {
		return err
	}

	if err := renderSlot(w, slot, node.Script); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</"+wrap+">")
	return err
}

func renderSlot(w io.Writer, tag string, children []*latex.Node) error {
	if _, err := fmt.Fprint(w, "<"+tag+">"); err != nil {
		return err
	}

	if err := renderNodes(w, children); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</"+tag+">")
	return err
}
