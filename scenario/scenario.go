package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/learnstructures/singly/internal/xerrors"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrBadExpectation   = errors.New("bad expectation")
	ErrMismatch         = errors.New("mismatch")
)

// Scenario is a named sequence of steps replayed against an empty list of strings
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single list operation with optional expectation of its result.
// Missing Value or Anchor means the empty string, the zero value of the list.
type Step struct {
	Op     Op        `yaml:"op"`
	Value  string    `yaml:"value,omitempty"`
	Anchor string    `yaml:"anchor,omitempty"`
	Expect yaml.Node `yaml:"expect,omitempty"`
	// Absent expects the empty result of first, last, removeFirst or removeLast
	Absent bool      `yaml:"absent,omitempty"`

	want    interface{}
	hasWant bool
}

// Parse decodes a scenario and validates its steps
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&s); err != nil {
		return nil, xerrors.WithStackTrace(fmt.Errorf("decode scenario: %w", err))
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return nil, xerrors.WithStackTrace(fmt.Errorf("scenario %q step %d: %w", s.Name, i, err))
		}
	}

	return &s, nil
}

// Load parses the scenario file at path
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, xerrors.WithStackTrace(fmt.Errorf("load %q: %w", path, err))
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

func (s *Step) validate() error {
	kind, has := ops[s.Op]
	if !has {
		return fmt.Errorf("%w %q", ErrUnknownOperation, s.Op)
	}
	if s.Absent && kind != resultOptional {
		return fmt.Errorf("%w: %q never returns an empty result", ErrBadExpectation, s.Op)
	}
	if s.Expect.Kind == 0 {
		return nil
	}
	if s.Absent {
		return fmt.Errorf("%w: both expect and absent are set", ErrBadExpectation)
	}

	var err error
	switch kind {
	case resultBool:
		var v bool
		err = s.Expect.Decode(&v)
		s.want = v
	case resultInt:
		var v int
		err = s.Expect.Decode(&v)
		s.want = v
	case resultString, resultOptional:
		var v string
		err = s.Expect.Decode(&v)
		s.want = v
	case resultValues:
		var v []string
		err = s.Expect.Decode(&v)
		s.want = v
	default:
		return fmt.Errorf("%w: %q has no result", ErrBadExpectation, s.Op)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadExpectation, err)
	}
	s.hasWant = true

	return nil
}
