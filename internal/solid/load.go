package solid

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

type rawElement struct {
	ID   string     `json:"id"`
	Type string     `json:"type"`
	Min  [3]float64 `json:"min"`
	Max  [3]float64 `json:"max"`
}

type rawModel struct {
	Elements []rawElement `json:"elements"`
}

// DecodeModel reads a JSON model document:
//
//	{"elements": [{"id": "w1", "type": "wall",
//	               "min": [0,0,0], "max": [10,3,0.3]}, ...]}
//
// Elements missing an id get a sequential one. Min/max per axis are
// swapped into order rather than rejected.
func DecodeModel(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw rawModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	if len(raw.Elements) == 0 {
		return nil, errors.New("model: no elements")
	}
	m := &Model{Elements: make([]Element, 0, len(raw.Elements))}
	for i, re := range raw.Elements {
		id := re.ID
		if id == "" {
			id = fmt.Sprintf("element-%d", i+1)
		}
		b := Box{
			Min: Vec{re.Min[0], re.Min[1], re.Min[2]},
			Max: Vec{re.Max[0], re.Max[1], re.Max[2]},
		}
		if b.Min.X > b.Max.X {
			b.Min.X, b.Max.X = b.Max.X, b.Min.X
		}
		if b.Min.Y > b.Max.Y {
			b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
		}
		if b.Min.Z > b.Max.Z {
			b.Min.Z, b.Max.Z = b.Max.Z, b.Min.Z
		}
		m.Elements = append(m.Elements, Element{ID: id, Type: re.Type, Box: b})
	}
	return m, nil
}

// LoadModel reads a model file from disk.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeModel(f)
}
