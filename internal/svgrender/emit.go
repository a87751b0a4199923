package svgrender

import (
	"fmt"
	"math"
	"strings"

	"github.com/genortech/photoeng/internal/diagram"
)

var xmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&apos;",
)

// Emit renders d as a single self-contained SVG document using theme.
// Coordinates are absolute; the document never references external
// resources, per spec.md §4.9.
func Emit(d diagram.Diagram, theme Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.2f" height="%.2f" viewBox="0 0 %.2f %.2f">`,
		d.Width, d.Height, d.Width, d.Height)
	b.WriteString("\n")
	writeStyle(&b, theme)

	fmt.Fprintf(&b, `<rect x="0" y="0" width="%.2f" height="%.2f" class="bg"/>`, d.Width, d.Height)
	b.WriteString("\n")

	for _, cell := range d.Cells {
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="rgba(%d,%d,%d,%.3f)"/>`,
			cell.X, cell.Y, cell.W, cell.H, cell.R, cell.G, cell.B, float64(cell.A)/255)
		b.WriteString("\n")
	}

	for _, arc := range d.Arcs {
		writeArc(&b, arc)
	}

	for _, poly := range d.Polygons {
		writePolygon(&b, poly)
	}

	for _, pl := range d.Polylines {
		writePolyline(&b, pl)
	}

	for _, label := range d.Labels {
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" text-anchor="%s" class="%s">%s</text>`,
			label.Pos.X, label.Pos.Y, label.Anchor, cssClass(label.Class), escape(label.Text))
		b.WriteString("\n")
	}

	if d.Scale.Title != "" {
		fmt.Fprintf(&b, `<text x="%.2f" y="16" text-anchor="middle" class="title">%s</text>`,
			d.Width/2, escape(d.Scale.Title))
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writeStyle(b *strings.Builder, theme Theme) {
	fmt.Fprintf(b, `<style>
.bg { fill: %s; }
.grid { stroke: %s; fill: none; stroke-width: 0.75; }
.grid-label, .axis-label, .legend-label, .bug-label { fill: %s; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; font-size: 10px; }
.title { fill: %s; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; font-size: 13px; }
.curve-c0-c180, .curve-0 { stroke: %s; fill: none; stroke-width: 1.5; }
.curve-c90-c270, .curve-1 { stroke: %s; fill: none; stroke-width: 1.5; }
.wireframe { stroke: %s; fill: none; stroke-width: 0.5; }
.bug-ring { stroke: %s; fill: none; stroke-width: 0.75; }
</style>
`, theme.Background, theme.Grid, theme.Text, theme.Text, theme.CurveC0C180, theme.CurveC90C270, theme.Wireframe, theme.Grid)
}

func writePolyline(b *strings.Builder, pl diagram.Polyline) {
	if len(pl.Points) == 0 {
		return
	}
	tag := "polyline"
	if pl.Closed {
		tag = "polygon"
	}
	fmt.Fprintf(b, `<%s points="%s" class="%s"/>`, tag, pointsAttr(pl.Points), cssClass(pl.Class))
	b.WriteString("\n")
}

func writePolygon(b *strings.Builder, pg diagram.Polygon) {
	if len(pg.Points) == 0 {
		return
	}
	fmt.Fprintf(b, `<polygon points="%s" class="%s"/>`, pointsAttr(pg.Points), cssClass(pg.Class))
	b.WriteString("\n")
}

func writeArc(b *strings.Builder, a diagram.Arc) {
	if a.SweepAngle >= 360 {
		fmt.Fprintf(b, `<ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" class="%s"/>`,
			a.Center.X, a.Center.Y, a.RadiusX, a.RadiusY, cssClass(a.Class))
		b.WriteString("\n")
		return
	}
	fmt.Fprintf(b, `<path d="%s" class="%s"/>`, arcPath(a), cssClass(a.Class))
	b.WriteString("\n")
}

func pointsAttr(pts []diagram.Point2D) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

// arcPath builds an SVG elliptical-arc path for a partial sweep; full
// (360°) sweeps are drawn as <ellipse> instead, see writeArc.
func arcPath(a diagram.Arc) string {
	startRad := a.StartAngle * math.Pi / 180
	endRad := (a.StartAngle + a.SweepAngle) * math.Pi / 180
	sx := a.Center.X + a.RadiusX*math.Cos(startRad)
	sy := a.Center.Y + a.RadiusY*math.Sin(startRad)
	ex := a.Center.X + a.RadiusX*math.Cos(endRad)
	ey := a.Center.Y + a.RadiusY*math.Sin(endRad)
	largeArc := 0
	if math.Abs(a.SweepAngle) > 180 {
		largeArc = 1
	}
	sweepFlag := 1
	if a.SweepAngle < 0 {
		sweepFlag = 0
	}
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d %d %.2f %.2f",
		sx, sy, a.RadiusX, a.RadiusY, largeArc, sweepFlag, ex, ey)
}

func cssClass(c string) string {
	if c == "" {
		return "default"
	}
	return c
}

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
