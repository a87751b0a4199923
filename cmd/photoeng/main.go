// Command photoeng is a thin CLI host over the photoeng library: it loads
// a file, threads its bytes through the engine, and reports either
// structured data or an SVG string. It owns the only logger and the only
// terminal styling in this module; the core library stays free of both.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/genortech/photoeng"
	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/svgrender"
	"github.com/genortech/photoeng/internal/validate"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func main() {
	logger := log.New(os.Stderr)
	logger.SetPrefix("photoeng")

	if len(os.Args) < 3 {
		logger.Errorf("usage: photoeng <validate|sample|render> <file> [args...]")
		os.Exit(2)
	}

	cmd, path := os.Args[1], os.Args[2]
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("read %s: %v", path, err)
		os.Exit(1)
	}

	doc, err := parseByExtension(path, data)
	if err != nil {
		logger.Errorf("parse %s: %v", path, err)
		os.Exit(1)
	}

	switch cmd {
	case "validate":
		runValidate(doc)
	case "sample":
		runSample(logger, doc, os.Args[3:])
	case "render":
		runRender(logger, doc, os.Args[3:])
	default:
		logger.Errorf("unknown command %q", cmd)
		os.Exit(2)
	}
}

func parseByExtension(path string, data []byte) (*model.Photometry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ldt":
		return photoeng.ParseLDT(data)
	case ".ies":
		return photoeng.ParseIES(data)
	default:
		if doc, err := photoeng.ParseLDT(data); err == nil {
			return doc, nil
		}
		return photoeng.ParseIES(data)
	}
}

func runValidate(doc *model.Photometry) {
	warnings := photoeng.Validate(doc)
	fmt.Println(headerStyle.Render(fmt.Sprintf("%d warnings", len(warnings))))
	for _, w := range warnings {
		line := fmt.Sprintf("[%s] %s: %s", w.Severity, w.Code, w.Message)
		switch w.Severity {
		case validate.Fatal:
			fmt.Println(errStyle.Render(line))
		case validate.Warn:
			fmt.Println(warnStyle.Render(line))
		default:
			fmt.Println(line)
		}
	}
	if len(warnings) == 0 {
		fmt.Println(okStyle.Render("no issues found"))
	}
}

func runSample(logger *log.Logger, doc *model.Photometry, args []string) {
	if len(args) < 2 {
		logger.Errorf("usage: photoeng sample <file> <C> <gamma>")
		os.Exit(2)
	}
	c, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		logger.Errorf("invalid C angle %q: %v", args[0], err)
		os.Exit(2)
	}
	gamma, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		logger.Errorf("invalid gamma angle %q: %v", args[1], err)
		os.Exit(2)
	}
	fmt.Printf("%.3f\n", photoeng.Sample(doc, c, gamma))
}

func runRender(logger *log.Logger, doc *model.Photometry, args []string) {
	if len(args) < 2 {
		logger.Errorf("usage: photoeng render <file> <polar|cartesian|butterfly|heatmap|bug|lcs> <out.svg>")
		os.Exit(2)
	}
	kind, out := args[0], args[1]

	var (
		svg string
		err error
	)
	switch kind {
	case "polar":
		svg, err = photoeng.PolarSVG(doc, 800, 800, svgrender.Light)
	case "cartesian":
		svg, err = photoeng.CartesianSVG(doc, 800, 600, 8, svgrender.Light)
	case "butterfly":
		svg, err = photoeng.ButterflySVG(doc, 800, 800, 20, svgrender.Light)
	case "heatmap":
		svg, err = photoeng.HeatmapSVG(doc, 900, 450, svgrender.Light)
	case "bug":
		svg, err = photoeng.BugSVG(doc, 700, 700, svgrender.Light)
	case "lcs":
		svg, err = photoeng.LcsSVG(doc, 800, 500, svgrender.Light)
	default:
		logger.Errorf("unknown diagram kind %q", kind)
		os.Exit(2)
	}
	if err != nil {
		logger.Errorf("render %s: %v", kind, err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		logger.Errorf("write %s: %v", out, err)
		os.Exit(1)
	}
	logger.Infof("wrote %s", out)
}
