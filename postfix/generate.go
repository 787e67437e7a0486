package postfix

import (
	"fmt"
)

// CandidatesPerShape is 4! operand orders × 4³ operator choices.
const CandidatesPerShape = 24 * 64

// generator carries the backtracking state of one shape expansion.
type generator struct {
	shape    Shape                  // skeleton being filled
	buf      []byte                 // tokens chosen so far
	excluded []byte                 // operand tokens already placed in buf
	visit    func(c Candidate) bool // receives each complete candidate
}

// Walk calls fn for every candidate consistent with shape, in lexicographic
// token order: operands '1' < '2' < '3' < '4' and operators + < - < * < /
// at each position. Returning false from fn stops the walk early.
//
// Returns ErrInvalidShape (wrapped) if shape fails Validate.
func Walk(shape Shape, fn func(c Candidate) bool) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%w: %q", err, string(shape))
	}
	if fn == nil {
		return nil
	}

	g := &generator{
		shape:    shape,
		buf:      make([]byte, 0, len(shape)),
		excluded: make([]byte, 0, Operands),
		visit:    fn,
	}
	g.fill(0)

	return nil
}

// Generate returns every candidate consistent with shape, in Walk order.
func Generate(shape Shape) ([]Candidate, error) {
	out := make([]Candidate, 0, CandidatesPerShape)
	err := Walk(shape, func(c Candidate) bool {
		out = append(out, c)

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// fill assigns token position pos and recurses. It reports false once the
// visitor has asked to stop. Every token pushed onto buf or excluded is
// popped before fill returns, on every path.
func (g *generator) fill(pos int) bool {
	if pos == len(g.shape) {
		return g.visit(Candidate(g.buf))
	}

	if g.shape[pos] == 'O' {
		for _, op := range operators {
			g.buf = append(g.buf, byte(op))
			more := g.fill(pos + 1)
			g.buf = g.buf[:len(g.buf)-1]
			if !more {
				return false
			}
		}

		return true
	}

	for tok := byte('1'); tok < '1'+Operands; tok++ {
		if g.isExcluded(tok) {
			continue
		}
		g.excluded = append(g.excluded, tok)
		g.buf = append(g.buf, tok)
		more := g.fill(pos + 1)
		g.buf = g.buf[:len(g.buf)-1]
		g.excluded = g.excluded[:len(g.excluded)-1]
		if !more {
			return false
		}
	}

	return true
}

func (g *generator) isExcluded(tok byte) bool {
	for _, x := range g.excluded {
		if x == tok {
			return true
		}
	}

	return false
}
