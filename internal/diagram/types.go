// Package diagram builds format-independent geometric primitives for the
// six canonical photometric diagrams (spec.md §4.8): polar, Cartesian,
// butterfly, heatmap, BUG, and LCS. Builders are pure functions of a
// Photometry document and render parameters; the SVG emitter (package
// svgrender) is the only consumer that knows how to turn these primitives
// into markup.
package diagram

// Point2D is a single coordinate in the diagram's local coordinate space.
type Point2D struct {
	X, Y float64
}

// Polyline is an open (or explicitly closed) sequence of points, rendered
// as a stroked path.
type Polyline struct {
	Points []Point2D
	Closed bool
	Class  string // CSS class selecting stroke color/weight from the theme
}

// Polygon is a filled region.
type Polygon struct {
	Points []Point2D
	Class  string
}

// TextAnchor mirrors the SVG text-anchor values.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// TextLabel places a short string at pos.
type TextLabel struct {
	Pos    Point2D
	Text   string
	Anchor TextAnchor
	Class  string
}

// Arc is a circular (or elliptical) arc segment, used for concentric grid
// circles and the BUG ring diagram.
type Arc struct {
	Center      Point2D
	RadiusX     float64
	RadiusY     float64
	StartAngle  float64 // degrees, 0 = +X axis, clockwise
	SweepAngle  float64 // degrees
	Class       string
}

// ColorCell is one rectangular heatmap cell, pre-resolved to an RGBA color
// (the heatmap builder owns the color ramp; the emitter just paints it).
type ColorCell struct {
	X, Y, W, H float64
	R, G, B, A uint8
}

// AxisTick is one labeled tick mark on a diagram axis.
type AxisTick struct {
	Value float64
	Label string
	Pos   Point2D
}

// Scale carries the axis ticks, units, and title shared by every diagram,
// per spec.md §4.8.
type Scale struct {
	Title   string
	Units   string
	Max     float64
	XTicks  []AxisTick
	YTicks  []AxisTick
}

// Diagram is the complete output of a builder: every primitive needed to
// render one diagram, plus its scale.
type Diagram struct {
	Width, Height float64
	Polylines     []Polyline
	Polygons      []Polygon
	Labels        []TextLabel
	Arcs          []Arc
	Cells         []ColorCell
	Scale         Scale
}
