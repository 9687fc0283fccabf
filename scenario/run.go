package scenario

import (
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/learnstructures/singly"
	"github.com/learnstructures/singly/internal/stack"
	"github.com/learnstructures/singly/internal/xerrors"
	"github.com/learnstructures/singly/trace"
)

// Report describes a finished scenario replay
type Report struct {
	ID   string
	Name string

	// Steps is the number of replayed steps
	Steps  int
	// Failed is the number of steps with unmet expectations
	Failed int
	// Final is the textual rendering of the list after the last replayed step
	Final  string
}

func (r Report) String() string {
	status := "ok"
	if r.Failed > 0 {
		status = "FAIL"
	}

	return fmt.Sprintf("%s %q (%s): %d steps, %d failed, %s", status, r.Name, r.ID, r.Steps, r.Failed, r.Final)
}

// Run replays steps of s against a fresh empty list.
// All mismatches are joined into the returned error unless WithFailFast is set.
func Run(ctx context.Context, s *Scenario, opts ...Option) (r Report, finalErr error) {
	options := newOptions(opts...)
	r.ID = uuid.NewString()
	r.Name = s.Name

	onDone := trace.ScenarioOnRun(options.trace, &ctx,
		stack.FunctionID("github.com/learnstructures/singly/scenario.Run"),
		r.ID, r.Name,
	)
	defer func() {
		onDone(r.Steps, finalErr)
	}()

	l := singly.New[string](options.list...)
	defer func() {
		r.Final = l.String()
	}()

	var errs []error
	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)

			break
		}
		step := &s.Steps[i]
		err := replay(ctx, options.trace, r.ID, i, step, l)
		r.Steps++
		if err != nil {
			r.Failed++
			errs = append(errs, err)
			if options.failFast {
				break
			}
		}
	}

	if err := xerrors.Join(errs...); err != nil {
		return r, xerrors.WithStackTrace(fmt.Errorf("scenario %q: %w", s.Name, err))
	}

	return r, nil
}

func replay(ctx context.Context, t *trace.Scenario, id string, idx int, step *Step, l *singly.List[string]) (err error) {
	onDone := trace.ScenarioOnStep(t, &ctx,
		stack.FunctionID("github.com/learnstructures/singly/scenario.replay"),
		id, idx, string(step.Op),
	)
	defer func() {
		onDone(l, err)
	}()

	got, ok, err := apply(step, l)
	if err != nil {
		return err
	}

	return step.check(idx, got, ok)
}

// apply calls the list operation of step. ok is false only for an empty
// optional result.
func apply(step *Step, l *singly.List[string]) (got interface{}, ok bool, _ error) {
	switch step.Op {
	case OpAddFirst:
		l.AddFirst(step.Value)
	case OpAddLast:
		l.AddLast(step.Value)
	case OpSetFirst:
		l.SetFirst(step.Value)
	case OpRemoveFirst:
		v, ok := l.RemoveFirst()

		return v, ok, nil
	case OpRemoveLast:
		v, ok := l.RemoveLast()

		return v, ok, nil
	case OpFirst:
		v, ok := l.First()

		return v, ok, nil
	case OpLast:
		v, ok := l.Last()

		return v, ok, nil
	case OpRemove:
		return l.Remove(step.Value), true, nil
	case OpContains:
		return l.Contains(step.Value), true, nil
	case OpIndexOf:
		return l.IndexOf(step.Value), true, nil
	case OpInsertBefore:
		return l.InsertBefore(step.Value, step.Anchor), true, nil
	case OpSize:
		return l.Size(), true, nil
	case OpValues:
		return l.Values(), true, nil
	case OpString:
		return l.String(), true, nil
	case OpClear:
		return l.Clear(), true, nil
	default:
		return nil, false, xerrors.WithStackTrace(fmt.Errorf("%w %q", ErrUnknownOperation, step.Op))
	}

	return nil, true, nil
}

func (s *Step) check(idx int, got interface{}, ok bool) error {
	switch {
	case s.Absent:
		if ok {
			return mismatch(idx, s.Op, "got %q, want absent", got)
		}
	case !s.hasWant:
	case !ok:
		return mismatch(idx, s.Op, "got absent, want %q", s.want)
	case ops[s.Op] == resultValues:
		if diff := cmp.Diff(s.want, got, cmpopts.EquateEmpty()); diff != "" {
			return mismatch(idx, s.Op, "(-want +got):\n%s", diff)
		}
	case got != s.want:
		return mismatch(idx, s.Op, "got %v, want %v", got, s.want)
	}

	return nil
}

func mismatch(idx int, op Op, format string, args ...interface{}) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("step %d (%s): %w: %s", idx, op, ErrMismatch, fmt.Sprintf(format, args...)),
		xerrors.WithSkipDepth(1),
	)
}

// RunAll replays scenarios concurrently, at most limit at once (no limit if
// limit is not positive). Every scenario gets its own list. Reports keep the
// order of scenarios.
func RunAll(ctx context.Context, scenarios []*Scenario, limit int, opts ...Option) ([]Report, error) {
	options := newOptions(opts...)
	reports := make([]Report, len(scenarios))
	errs := make([]error, len(scenarios))

	g := &errgroup.Group{}
	if options.failFast {
		g, ctx = errgroup.WithContext(ctx)
	}
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, s := range scenarios {
		g.Go(func() error {
			reports[i], errs[i] = Run(ctx, s, opts...)
			if options.failFast {
				return errs[i]
			}

			return nil
		})
	}
	_ = g.Wait()

	return reports, xerrors.Join(errs...)
}
