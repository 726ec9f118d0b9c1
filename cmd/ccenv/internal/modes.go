package internal

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/goplus/ccenv/internal/toolchain"
)

// modesValue is the --modes flag: a validated, comma separated mode set.
type modesValue struct {
	modes *[]toolchain.Mode
}

var _ pflag.Value = (*modesValue)(nil)

func newModesValue(p *[]toolchain.Mode) *modesValue {
	return &modesValue{modes: p}
}

func (v *modesValue) String() string {
	if v.modes == nil {
		return ""
	}
	names := make([]string, len(*v.modes))
	for i, m := range *v.modes {
		names[i] = string(m)
	}
	return strings.Join(names, ",")
}

func (v *modesValue) Set(s string) error {
	m, err := toolchain.ParseModes(s)
	if err != nil {
		return err
	}
	*v.modes = m
	return nil
}

func (v *modesValue) Type() string {
	return "modes"
}
