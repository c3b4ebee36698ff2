package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/on-the-ground/effect_ive_io/effects"
)

// ErrParse is wrapped by the failures of ParseInt and ParseFloat.
var ErrParse = errors.New("not a number")

// ParseInt describes converting text to an int, failing with ErrParse.
func ParseInt(text string) effects.Node[int] {
	return effects.RaiseIfErr(func() (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrParse, text)
		}
		return n, nil
	})
}

// ParseFloat describes converting text to a float64, failing with ErrParse.
func ParseFloat(text string) effects.Node[float64] {
	return effects.RaiseIfErr(func() (float64, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrParse, text)
		}
		return f, nil
	})
}

// ReadInt reads one line and parses it as an int.
func ReadInt() effects.Node[int] {
	return effects.FlatMap(ReadLine(), ParseInt)
}

// ReadFloat reads one line and parses it as a float64.
func ReadFloat() effects.Node[float64] {
	return effects.FlatMap(ReadLine(), ParseFloat)
}
