package shape

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
)

//go:embed shapes.json
var shapes []byte

func decodeShapes() ([]Shape, error) {
	var result []Shape
	if err := json.Unmarshal(shapes, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Names lists shapes available in the built-in catalogue.
func Names() ([]string, error) {
	all, err := decodeShapes()
	if err != nil {
		return nil, err
	}

	result := make([]string, len(all))
	for i, s := range all {
		result[i] = s.Name
	}

	return result, nil
}

// Get returns a built-in shape by name.
func Get(name string) (*Shape, error) {
	all, err := decodeShapes()
	if err != nil {
		return nil, err
	}

	for _, s := range all {
		if s.Name == name {
			return &s, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrShapeNotFound, name)
}

// Find looks for a shape in the given ones first and falls back to the catalogue.
func Find(name string, local []*Shape) (*Shape, error) {
	for _, s := range local {
		if s.Name == name {
			return s, nil
		}
	}

	return Get(name)
}
