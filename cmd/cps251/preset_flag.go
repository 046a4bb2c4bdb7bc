package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MnKimJ/CPS251/internal/studytimer"
)

// presetValue is a pflag.Value that only accepts session length presets.
// "25" and "25m" are both accepted.
type presetValue int

var _ pflag.Value = (*presetValue)(nil)

func (p *presetValue) String() string { return strconv.Itoa(int(*p)) }

func (p *presetValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "m"))
	if err != nil {
		return fmt.Errorf("invalid session length %q: %w", s, err)
	}
	if !studytimer.IsPreset(n) {
		return fmt.Errorf("%w: %d (choose one of %v)", studytimer.ErrUnknownPreset, n, studytimer.Presets)
	}
	*p = presetValue(n)
	return nil
}

func (p *presetValue) Type() string { return "minutes" }
