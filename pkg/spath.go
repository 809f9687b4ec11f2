package spath

import (
	"encoding/xml"
	"fmt"

	"github.com/gucio321/spath/pkg/config"
	"github.com/gucio321/spath/pkg/pb"
	"github.com/gucio321/spath/pkg/shape"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Spath turns a shape into path data or a standalone SVG document.
type Spath struct {
	shape       *shape.Shape
	stroke      string
	fill        string
	strokeWidth float64
	size        struct {
		width, height float64
	}
}

// NewSpath creates Spath with default style (see config.Config.Defaults).
func NewSpath(s *shape.Shape) *Spath {
	return (&Spath{shape: s}).Config(config.Config{})
}

// Config applies style and size from cfg. Unset values fall back to defaults.
func (s *Spath) Config(cfg config.Config) *Spath {
	cfg = cfg.Defaults()
	s.stroke = cfg.Stroke
	s.fill = cfg.Fill
	s.strokeWidth = cfg.StrokeWidth
	s.size.width, s.size.height = cfg.Width, cfg.Height

	return s
}

func (s *Spath) Stroke(color string) *Spath {
	s.stroke = color
	return s
}

func (s *Spath) Fill(color string) *Spath {
	s.fill = color
	return s
}

func (s *Spath) StrokeWidth(width float64) *Spath {
	s.strokeWidth = width
	return s
}

// Size sets the viewBox size.
func (s *Spath) Size(width, height float64) *Spath {
	s.size.width, s.size.height = width, height
	return s
}

// Path returns the path data of the shape.
func (s *Spath) Path() (string, error) {
	return s.shape.Path()
}

type svgDocument struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Title   string   `xml:"title,omitempty"`
	Path    svgPath  `xml:"path"`
}

type svgPath struct {
	D           string `xml:"d,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
	Fill        string `xml:"fill,attr"`
}

// SVG returns a minimal SVG document containing the shape as a single path element.
func (s *Spath) SVG() ([]byte, error) {
	// 1.0: build path
	d, err := s.Path()
	if err != nil {
		return nil, err
	}

	// 2.0: wrap it
	doc := svgDocument{
		Xmlns:   svgNamespace,
		ViewBox: fmt.Sprintf("0 0 %s %s", pb.FormatNumber(s.size.width), pb.FormatNumber(s.size.height)),
		Title:   s.shape.Name,
		Path: svgPath{
			D:           d,
			Stroke:      s.stroke,
			StrokeWidth: pb.FormatNumber(s.strokeWidth),
			Fill:        s.fill,
		},
	}

	out, err := xml.MarshalIndent(doc, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("cant encode SVG document: %w", err)
	}

	// N.N: return
	return append([]byte(xml.Header), out...), nil
}
