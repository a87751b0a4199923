// Package svgrender turns the format-independent diagram primitives from
// package diagram into a single self-contained SVG document, per
// spec.md §4.9.
package svgrender

// Theme names every color a diagram references. CSSVariables selects a
// sentinel theme whose colors are emitted as var(--eulumdat-*) references
// instead of literal values, letting a host page restyle the document
// without regenerating it.
type Theme struct {
	Name string

	Background  string
	Surface     string
	Grid        string
	Axis        string
	Text        string
	CurveC0C180  string
	CurveC90C270 string
	Wireframe    string
}

const cssVariablesThemeName = "css-variables"

// Light is the default light-background theme.
var Light = Theme{
	Name:        "light",
	Background:  "#ffffff",
	Surface:     "#f5f5f5",
	Grid:        "#d0d0d0",
	Axis:        "#404040",
	Text:        "#202020",
	CurveC0C180: "#1f77b4",
	CurveC90C270: "#d62728",
	Wireframe:   "#b0b0b0",
}

// Dark is the dark-background theme.
var Dark = Theme{
	Name:        "dark",
	Background:  "#121212",
	Surface:     "#1e1e1e",
	Grid:        "#3a3a3a",
	Axis:        "#c0c0c0",
	Text:        "#e8e8e8",
	CurveC0C180: "#58a6ff",
	CurveC90C270: "#ff7b72",
	Wireframe:   "#555555",
}

// CSSVariables emits var(--eulumdat-*) in place of every color, so a host
// stylesheet controls the palette.
var CSSVariables = Theme{
	Name:        cssVariablesThemeName,
	Background:  "var(--eulumdat-bg)",
	Surface:     "var(--eulumdat-surface)",
	Grid:        "var(--eulumdat-grid)",
	Axis:        "var(--eulumdat-axis)",
	Text:        "var(--eulumdat-text)",
	CurveC0C180: "var(--eulumdat-curve-c0-c180)",
	CurveC90C270: "var(--eulumdat-curve-c90-c270)",
	Wireframe:   "var(--eulumdat-wireframe)",
}
