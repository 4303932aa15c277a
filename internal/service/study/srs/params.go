package srs

import (
	"errors"
	"fmt"
)

// Parameters holds the tunable constants of the scheduler.
// The again outcome is not configurable: it always schedules the card for the next day.
type Parameters struct {
	HardMultiplier    float64
	GoodMultiplier    float64
	EasyMultiplier    float64
	FirstGoodInterval int
	FirstEasyInterval int
	MaxIntervalDays   int
}

// DefaultParameters returns the stock SM-2 style constants.
func DefaultParameters() Parameters {
	return Parameters{
		HardMultiplier:    1.2,
		GoodMultiplier:    2.0,
		EasyMultiplier:    2.5,
		FirstGoodInterval: 1,
		FirstEasyInterval: 2,
		MaxIntervalDays:   36500,
	}
}

// Validate checks that the parameters keep intervals positive and non-shrinking on success.
func (p Parameters) Validate() error {
	var errs []error

	if p.HardMultiplier < 1 {
		errs = append(errs, fmt.Errorf("hard multiplier must be >= 1, got %v", p.HardMultiplier))
	}
	if p.GoodMultiplier < 1 {
		errs = append(errs, fmt.Errorf("good multiplier must be >= 1, got %v", p.GoodMultiplier))
	}
	if p.EasyMultiplier < 1 {
		errs = append(errs, fmt.Errorf("easy multiplier must be >= 1, got %v", p.EasyMultiplier))
	}
	if p.FirstGoodInterval < 1 {
		errs = append(errs, fmt.Errorf("first good interval must be >= 1, got %d", p.FirstGoodInterval))
	}
	if p.FirstEasyInterval < 1 {
		errs = append(errs, fmt.Errorf("first easy interval must be >= 1, got %d", p.FirstEasyInterval))
	}
	if p.MaxIntervalDays < 1 {
		errs = append(errs, fmt.Errorf("max interval must be >= 1, got %d", p.MaxIntervalDays))
	}

	return errors.Join(errs...)
}
