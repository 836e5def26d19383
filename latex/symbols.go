package latex

// Symbols maps a command (including the leading backslash) to the character
// it stands for. The two structural commands are present with empty values:
// they are intercepted by the parser before lookup and never substituted.
// The table is never mutated at runtime.
var Symbols = map[string]string{
	// structural, handled by the parser
	"\\frac": "",
	"\\sqrt": "",

	// greek
	"\\alpha":  "α",
	"\\beta":   "β",
	"\\gamma":  "γ",
	"\\theta":  "θ",
	"\\pi":     "π",
	"\\sigma":  "σ",
	"\\phi":    "φ",
	"\\varphi": "φ",
	"\\Phi":    "Φ",
	"\\delta":  "δ",
	"\\lambda": "λ",
	"\\mu":     "μ",
	"\\Delta":  "Δ",
	"\\Omega":  "Ω",

	// relations and operators
	"\\neq":    "≠",
	"\\ne":     "≠",
	"\\leq":    "≤",
	"\\le":     "≤",
	"\\geq":    "≥",
	"\\ge":     "≥",
	"\\pm":     "±",
	"\\approx": "≈",
	"\\times":  "×",
	"\\cdot":   "·",
	"\\div":    "÷",
	"\\infty":  "∞",

	// arrows
	"\\rightarrow":     "→",
	"\\to":             "→",
	"\\leftarrow":      "←",
	"\\Rightarrow":     "⇒",
	"\\Leftrightarrow": "⇔",

	// geometry
	"\\degree":   "°",
	"\\angle":    "∠",
	"\\triangle": "△",
	"\\cong":     "≅",
	"\\sim":      "∽",
	"\\parallel": "∥",
	"\\perp":     "⊥",

	// sets and logic
	"\\cup":    "∪",
	"\\cap":    "∩",
	"\\in":     "∈",
	"\\subset": "⊂",
	"\\supset": "⊃",
	"\\forall": "∀",
	"\\exists": "∃",
}
