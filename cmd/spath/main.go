package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/kpango/glg"

	pkg "github.com/gucio321/spath/pkg"
	"github.com/gucio321/spath/pkg/config"
	"github.com/gucio321/spath/pkg/shape"
)

type Flags struct {
	InputFilePath  string
	ShapeName      string
	OutputFilePath string
	SVG            bool
	Stroke         string
	Fill           string
	StrokeWidth    float64
	list           bool
	quiet          bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input shape file path (TOML)")
	flag.StringVar(&f.ShapeName, "n", "", "shape name (from shapes dir or built-in catalogue)")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path")
	flag.BoolVar(&f.SVG, "svg", false, "wrap path in SVG document")
	flag.StringVar(&f.Stroke, "stroke", "", "stroke color (use with -svg)")
	flag.StringVar(&f.Fill, "fill", "", "fill color (use with -svg)")
	flag.Float64Var(&f.StrokeWidth, "sw", 0, "stroke width (use with -svg)")
	flag.BoolVar(&f.list, "l", false, "list available shapes")
	flag.BoolVar(&f.quiet, "q", false, "quiet")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.quiet {
		glg.Get().SetMode(glg.NONE)
	}

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		glg.Fatalf("Cannot load config: %v", err)
	}

	defaults := cfg.Defaults()

	local, err := shape.LoadDir(defaults.ShapesDir)
	if err != nil {
		glg.Fatalf("Cannot load shapes: %v", err)
	}

	if f.list {
		listShapes(local)
		return
	}

	var s *shape.Shape

	switch {
	case f.InputFilePath != "":
		s, err = shape.Load(f.InputFilePath)
	case f.ShapeName != "":
		s, err = shape.Find(f.ShapeName, local)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		glg.Fatalf("Cannot get shape: %v", err)
	}

	result, err := render(s, *cfg, f)
	if err != nil {
		glg.Fatalf("Cannot build path: %v", err)
	}

	if f.OutputFilePath == "" {
		fmt.Println(string(result))
		return
	}

	if err := os.WriteFile(f.OutputFilePath, result, 0o644); err != nil {
		glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
	}

	glg.Infof("%s written to %s", s.Name, f.OutputFilePath)
}

func render(s *shape.Shape, cfg config.Config, f Flags) ([]byte, error) {
	if !f.SVG {
		d, err := s.Path()
		return []byte(d), err
	}

	if f.Stroke != "" {
		cfg.Stroke = f.Stroke
	}

	if f.Fill != "" {
		cfg.Fill = f.Fill
	}

	if f.StrokeWidth > 0 {
		cfg.StrokeWidth = f.StrokeWidth
	}

	return pkg.NewSpath(s).Config(cfg).SVG()
}

func listShapes(local []*shape.Shape) {
	for _, s := range local {
		fmt.Printf("%s\t%s (local)\n", s.Name, s.Description)
	}

	names, err := shape.Names()
	if err != nil {
		glg.Fatalf("Cannot read catalogue: %v", err)
	}

	for _, name := range names {
		s, err := shape.Get(name)
		if err != nil {
			glg.Fatalf("Cannot read catalogue: %v", err)
		}

		fmt.Printf("%s\t%s\n", s.Name, s.Description)
	}
}
