package memory

import (
	"fmt"

	"github.com/pkg/errors"
)

// Strategy selects which qualifying hole receives an allocation.
type Strategy uint8

const (
	// FirstFit picks the lowest-address hole that is large enough.
	FirstFit Strategy = iota
	// BestFit picks the smallest hole that is large enough.
	BestFit
	// WorstFit picks the largest hole that is large enough.
	WorstFit
)

func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "FirstFit"
	case BestFit:
		return "BestFit"
	case WorstFit:
		return "WorstFit"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Code returns the single-letter wire code of the strategy.
func (s Strategy) Code() string {
	switch s {
	case FirstFit:
		return "F"
	case BestFit:
		return "B"
	case WorstFit:
		return "W"
	}
	return "?"
}

// ParseStrategy maps the wire codes F, B and W to a Strategy.
func ParseStrategy(code string) (Strategy, error) {
	switch code {
	case "F":
		return FirstFit, nil
	case "B":
		return BestFit, nil
	case "W":
		return WorstFit, nil
	}
	return 0, errors.Errorf("unknown placement strategy: '%s'", code)
}
