package stack

import (
	"fmt"
	"strings"
)

// Op is one of the eleven primitive operation symbols.
type Op string

// Operation symbols
const (
	SA  Op = "sa"
	SB  Op = "sb"
	SS  Op = "ss"
	RA  Op = "ra"
	RB  Op = "rb"
	RR  Op = "rr"
	RRA Op = "rra"
	RRB Op = "rrb"
	RRR Op = "rrr"
	PA  Op = "pa"
	PB  Op = "pb"
)

// Ops lists every operation symbol.
var Ops = []Op{SA, SB, SS, RA, RB, RR, RRA, RRB, RRR, PA, PB}

var inverses = map[Op]Op{
	SA:  SA,
	SB:  SB,
	SS:  SS,
	RA:  RRA,
	RRA: RA,
	RB:  RRB,
	RRB: RB,
	RR:  RRR,
	RRR: RR,
	PA:  PB,
	PB:  PA,
}

// ParseOp parses a single operation symbol. Surrounding whitespace is ignored.
func ParseOp(s string) (Op, error) {
	op := Op(strings.TrimSpace(s))
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// ParseOps parses a list of operation symbols.
func ParseOps(symbols []string) ([]Op, error) {
	ops := make([]Op, 0, len(symbols))
	for _, s := range symbols {
		op, err := ParseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Valid reports whether op is one of the eleven symbols.
func (op Op) Valid() bool {
	_, ok := inverses[op]
	return ok
}

// Inverse returns the operation that undoes op.
func (op Op) Inverse() Op {
	return inverses[op]
}

func (op Op) String() string {
	return string(op)
}

// Strings converts ops to their symbols.
func Strings(ops []Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = string(op)
	}
	return out
}
