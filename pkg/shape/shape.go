// Package shape describes paths as data: a named list of steps that is
// replayed on a pb.PathBuilder.
package shape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/spath/pkg/pb"
)

// Step is a single path command, e.g. {Op: "L", Args: [10, 10]}.
// Arc flags are given as 0 or 1.
type Step struct {
	Op   string    `koanf:"op" json:"op"`
	Args []float64 `koanf:"args" json:"args"`
}

// Shape is a named path program.
type Shape struct {
	Name        string `koanf:"name" json:"name"`
	Description string `koanf:"description" json:"description"`
	Steps       []Step `koanf:"steps" json:"steps"`
}

// Build pushes all steps onto b. Invalid steps are reported by b.Err().
func (s *Shape) Build(b *pb.PathBuilder) *pb.PathBuilder {
	for _, step := range s.Steps {
		b.Push(pb.Command{
			Code: pb.PathCommand(step.Op),
			Args: step.Args,
		})
	}

	return b
}

// Path builds the shape on a new builder and closes it.
func (s *Shape) Path() (string, error) {
	result, err := s.Build(pb.NewPathBuilder()).Close()
	if err != nil {
		return "", fmt.Errorf("cant build shape %s: %w", s.Name, err)
	}

	return result, nil
}

// Load reads a shape from a TOML file:
//
//	name = "triangle"
//
//	[[steps]]
//	op = "M"
//	args = [0, 0]
//
// If name is not set, the file name (without extension) is used.
func Load(path string) (*Shape, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("cant load shape from %s: %w", path, err)
	}

	result := &Shape{}
	if err := k.Unmarshal("", result); err != nil {
		return nil, fmt.Errorf("cant decode shape from %s: %w", path, err)
	}

	if result.Name == "" {
		result.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if len(result.Steps) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyShape)
	}

	glg.Debugf("loaded shape %s (%d steps) from %s", result.Name, len(result.Steps), path)

	return result, nil
}

// LoadDir loads every *.toml file in dir. Missing dir is not an error.
func LoadDir(dir string) ([]*Shape, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("cant read shapes directory %s: %w", dir, err)
	}

	var result []*Shape

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}

		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		result = append(result, s)
	}

	return result, nil
}
