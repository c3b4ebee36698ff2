// Package consoletest provides a scripted console provider for tests.
package consoletest

import (
	"context"

	"github.com/on-the-ground/effect_ive_io/effects/console"
)

var _ console.Provider = (*Script)(nil)

// Script replays canned input lines and records every written line.
// Like the interpreter it serves, it is not safe for concurrent use.
type Script struct {
	input  []string
	reads  int
	writes []string
}

func NewScript(lines ...string) *Script {
	return &Script{input: lines}
}

func (s *Script) ReadLine(context.Context) (string, error) {
	if s.reads >= len(s.input) {
		return "", console.ErrInputUnavailable
	}
	line := s.input[s.reads]
	s.reads++
	return line, nil
}

func (s *Script) WriteLine(_ context.Context, text string) error {
	s.writes = append(s.writes, text)
	return nil
}

// Reads is the number of lines consumed so far.
func (s *Script) Reads() int {
	return s.reads
}

// Writes returns a copy of the written lines in order.
func (s *Script) Writes() []string {
	return append([]string(nil), s.writes...)
}

// Install puts s into ctx as the console handler.
func (s *Script) Install(ctx context.Context) (context.Context, func() context.Context) {
	return console.WithEffectHandler(ctx, s)
}
