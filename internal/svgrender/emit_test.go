package svgrender

import (
	"strings"
	"testing"

	"github.com/genortech/photoeng/internal/diagram"
)

func TestEmitProducesSelfContainedSVG(t *testing.T) {
	d := diagram.Diagram{
		Width: 100, Height: 100,
		Polylines: []diagram.Polyline{{
			Points: []diagram.Point2D{{X: 0, Y: 0}, {X: 10, Y: 10}},
			Class:  "curve-0",
		}},
		Labels: []diagram.TextLabel{{
			Pos: diagram.Point2D{X: 5, Y: 5}, Text: "A & B <tag>",
			Anchor: diagram.AnchorMiddle,
		}},
		Scale: diagram.Scale{Title: "Test"},
	}

	svg := Emit(d, Light)

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("output does not start with <svg: %q", svg[:20])
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output does not end with </svg>")
	}
	if strings.Contains(svg, "http://") && !strings.Contains(svg, "www.w3.org") {
		t.Error("unexpected external resource reference")
	}
	if !strings.Contains(svg, "A &amp; B &lt;tag&gt;") {
		t.Error("label text was not XML-escaped")
	}
	if !strings.Contains(svg, "polyline") {
		t.Error("expected a polyline element for an open path")
	}
}

func TestEmitClosedPolylineBecomesPolygon(t *testing.T) {
	d := diagram.Diagram{
		Width: 50, Height: 50,
		Polylines: []diagram.Polyline{{
			Points: []diagram.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}},
			Closed: true,
		}},
	}
	svg := Emit(d, Dark)
	if !strings.Contains(svg, "<polygon") {
		t.Error("closed polyline should render as <polygon>")
	}
}

func TestEmitCSSVariablesTheme(t *testing.T) {
	svg := Emit(diagram.Diagram{Width: 10, Height: 10}, CSSVariables)
	if !strings.Contains(svg, "var(--eulumdat-bg)") {
		t.Error("expected CSS-variable background reference")
	}
}

func TestEscapeAllFiveEntities(t *testing.T) {
	in := `&<>"'`
	want := "&amp;&lt;&gt;&quot;&apos;"
	if got := escape(in); got != want {
		t.Errorf("escape(%q) = %q, want %q", in, got, want)
	}
}
