package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/taskflowgo/internal/task"
	"github.com/vk/taskflowgo/internal/testutil"
)

func TestRunConcurrent_RespectsWorkerBound(t *testing.T) {
	t.Parallel()

	const workers = 3
	gauge := &testutil.ConcurrencyGauge{}

	var specs []*task.Spec
	for i := 0; i < 12; i++ {
		specs = append(specs, &task.Spec{
			Name: fmt.Sprintf("task-%02d", i),
			Sink: nopSink{},
			Run: func(_ context.Context, _ task.Args) (any, error) {
				gauge.Enter()
				defer gauge.Exit()
				time.Sleep(10 * time.Millisecond)
				return nil, nil
			},
		})
	}

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: workers})
	require.NoError(t, err)
	require.Equal(t, 12, report.Len())
	require.Empty(t, report.FailedNames())
	require.LessOrEqual(t, gauge.MaxObserved(), workers)
}

func TestRunConcurrent_IndependentTasksOverlap(t *testing.T) {
	t.Parallel()

	// Two independent tasks that each wait for the other to start can only
	// finish if they actually run at the same time.
	var wg sync.WaitGroup
	wg.Add(2)
	barrier := func(_ context.Context, _ task.Args) (any, error) {
		wg.Done()
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil, nil
		case <-time.After(5 * time.Second):
			return nil, errors.New("peer never started")
		}
	}

	specs := []*task.Spec{
		{Name: "left", Sink: nopSink{}, Run: barrier},
		{Name: "right", Sink: nopSink{}, Run: barrier},
	}

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: 2})
	require.NoError(t, err)
	require.Empty(t, report.FailedNames())
}

func TestRunConcurrent_DependencyOrderPreserved(t *testing.T) {
	t.Parallel()

	rec := &callRecorder{}
	mk := func(name string, deps ...string) *task.Spec {
		s := &task.Spec{
			Name: name,
			Sink: nopSink{},
			Run: func(_ context.Context, _ task.Args) (any, error) {
				rec.record(name)
				return name, nil
			},
		}
		for _, d := range deps {
			s.Dependencies = append(s.Dependencies, task.Dependency{TaskName: d})
		}
		return s
	}

	specs := []*task.Spec{
		mk("a"),
		mk("b", "a"),
		mk("c", "a"),
		mk("d", "b", "c"),
	}

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, 4, report.Len())

	position := make(map[string]int)
	for i, name := range rec.names() {
		position[name] = i
	}
	require.Less(t, position["a"], position["b"])
	require.Less(t, position["a"], position["c"])
	require.Less(t, position["b"], position["d"])
	require.Less(t, position["c"], position["d"])
}

func TestRunConcurrent_ResultInjectionAcrossWorkers(t *testing.T) {
	t.Parallel()

	specs := []*task.Spec{
		{
			Name: "left",
			Sink: nopSink{},
			Run:  func(_ context.Context, _ task.Args) (any, error) { return 7, nil },
		},
		{
			Name: "right",
			Sink: nopSink{},
			Run:  func(_ context.Context, _ task.Args) (any, error) { return 5, nil },
		},
		{
			Name: "sum",
			Sink: nopSink{},
			Dependencies: []task.Dependency{
				{TaskName: "left", AsPositional: true},
				{TaskName: "right", AsNamed: true, ArgName: "addend"},
			},
			Run: func(_ context.Context, call task.Args) (any, error) {
				return call.Positional[0].(int) + call.Named["addend"].(int), nil
			},
		},
	}

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: 2})
	require.NoError(t, err)

	v, ok := report.Result("sum")
	require.True(t, ok)
	require.Equal(t, 12, v)
}

func TestRunConcurrent_FailurePropagation(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	rec := &callRecorder{}
	specs := []*task.Spec{
		{
			Name: "root",
			Sink: nopSink{},
			Run: func(_ context.Context, _ task.Args) (any, error) {
				rec.record("root")
				return nil, boom
			},
		},
		{
			Name:         "middle",
			Sink:         nopSink{},
			Dependencies: []task.Dependency{{TaskName: "root", AsPositional: true}},
			Run: func(_ context.Context, _ task.Args) (any, error) {
				rec.record("middle")
				return nil, nil
			},
		},
		{
			Name:         "leaf",
			Sink:         nopSink{},
			Dependencies: []task.Dependency{{TaskName: "middle"}},
			Run: func(_ context.Context, _ task.Args) (any, error) {
				rec.record("leaf")
				return nil, nil
			},
		},
		{
			Name: "survivor",
			Sink: nopSink{},
			Run: func(_ context.Context, _ task.Args) (any, error) {
				rec.record("survivor")
				return true, nil
			},
		},
	}

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: 4})
	require.NoError(t, err)

	require.NotContains(t, rec.names(), "middle")
	require.NotContains(t, rec.names(), "leaf")

	require.ErrorIs(t, report.Err("root"), boom)
	require.ErrorContains(t, report.Err("middle"), `upstream failure of "root"`)
	require.ErrorContains(t, report.Err("leaf"), `upstream failure of "middle"`)
	require.Equal(t, []string{"survivor"}, report.CompletedNames())
	require.Equal(t, 4, report.Len())
}

func TestRunConcurrent_SingleWorkerMatchesSequentialOrder(t *testing.T) {
	t.Parallel()

	mkSpecs := func(rec *callRecorder) []*task.Spec {
		mk := func(name string, deps ...string) *task.Spec {
			s := &task.Spec{
				Name: name,
				Sink: nopSink{},
				Run: func(_ context.Context, _ task.Args) (any, error) {
					rec.record(name)
					return nil, nil
				},
			}
			for _, d := range deps {
				s.Dependencies = append(s.Dependencies, task.Dependency{TaskName: d})
			}
			return s
		}
		return []*task.Spec{
			mk("fetch"),
			mk("audit"),
			mk("parse", "fetch"),
			mk("store", "parse", "audit"),
		}
	}

	seqRec := &callRecorder{}
	_, err := New(mustGraph(t, mkSpecs(seqRec))).Run(context.Background(), Options{Mode: Sequential})
	require.NoError(t, err)

	oneRec := &callRecorder{}
	_, err = New(mustGraph(t, mkSpecs(oneRec))).Run(context.Background(), Options{Mode: Concurrent, Workers: 1})
	require.NoError(t, err)

	require.Equal(t, seqRec.names(), oneRec.names())
}

func TestRunConcurrent_WorkersFlooredToOne(t *testing.T) {
	t.Parallel()

	specs := []*task.Spec{
		{Name: "only", Sink: nopSink{}, Run: func(_ context.Context, _ task.Args) (any, error) { return "done", nil }},
	}

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: 0})
	require.NoError(t, err)

	v, ok := report.Result("only")
	require.True(t, ok)
	require.Equal(t, "done", v)
}

func TestRunConcurrent_EveryTaskResolvedOnWideGraph(t *testing.T) {
	t.Parallel()

	// A fan-out/fan-in shape with a failure in one branch: every task must
	// land in exactly one of the two report sets.
	const width = 8
	specs := []*task.Spec{
		{Name: "seed", Sink: nopSink{}, Run: func(_ context.Context, _ task.Args) (any, error) { return 1, nil }},
	}
	for i := 0; i < width; i++ {
		name := fmt.Sprintf("branch-%d", i)
		fail := i == 3
		specs = append(specs, &task.Spec{
			Name:         name,
			Sink:         nopSink{},
			Dependencies: []task.Dependency{{TaskName: "seed", AsPositional: true}},
			Run: func(_ context.Context, call task.Args) (any, error) {
				if fail {
					return nil, errors.New("branch gave up")
				}
				return call.Positional[0], nil
			},
		})
	}
	join := &task.Spec{Name: "join", Sink: nopSink{}, Run: func(_ context.Context, _ task.Args) (any, error) { return nil, nil }}
	for i := 0; i < width; i++ {
		join.Dependencies = append(join.Dependencies, task.Dependency{TaskName: fmt.Sprintf("branch-%d", i)})
	}
	specs = append(specs, join)

	report, err := New(mustGraph(t, specs)).Run(context.Background(), Options{Mode: Concurrent, Workers: 4})
	require.NoError(t, err)

	require.Equal(t, len(specs), report.Len())
	require.Len(t, report.FailedNames(), 2)
	require.ErrorContains(t, report.Err("branch-3"), "branch gave up")
	require.ErrorContains(t, report.Err("join"), "upstream failure")
}
