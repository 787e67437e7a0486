package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/solve24/postfix"
)

// ErrUnsupportedFormat is returned for puzzle files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported puzzle file format")

// PuzzleFile is the on-disk batch format:
//
//	puzzles:
//	  - numbers: [5, 5, 5, 1]
//	  - numbers: [1, 2, 3, 4]
//	    target: 10
type PuzzleFile struct {
	Puzzles []Puzzle `json:"puzzles" yaml:"puzzles"`
}

// Puzzle is one hand. A nil Target falls back to --target.
type Puzzle struct {
	Numbers []int64 `json:"numbers" yaml:"numbers"`
	Target  *int64  `json:"target,omitempty" yaml:"target,omitempty"`
}

// LoadPuzzles reads and validates a .yaml, .yml or .json puzzle file.
func LoadPuzzles(path string) (*PuzzleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf PuzzleFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&pf); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&pf); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if len(pf.Puzzles) == 0 {
		return nil, fmt.Errorf("%s: no puzzles", path)
	}
	for i, p := range pf.Puzzles {
		if len(p.Numbers) != postfix.Operands {
			return nil, fmt.Errorf("%s: puzzle %d: expected %d numbers, got %d",
				path, i+1, postfix.Operands, len(p.Numbers))
		}
	}
	return &pf, nil
}

// Hand returns the puzzle's numbers as a fixed-size array.
func (p Puzzle) Hand() [postfix.Operands]int64 {
	var nums [postfix.Operands]int64
	copy(nums[:], p.Numbers)
	return nums
}
