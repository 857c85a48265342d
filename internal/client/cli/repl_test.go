package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) List(ctx context.Context, from int) error {
	f.calls = append(f.calls, fmt.Sprintf("list %d", from))
	return f.err
}

func (f *fakeExec) More(ctx context.Context) error {
	f.calls = append(f.calls, "more")
	return f.err
}

func (f *fakeExec) Show(ctx context.Context, n int) error {
	f.calls = append(f.calls, fmt.Sprintf("show %d", n))
	return f.err
}

func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return f.err
}

func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return f.err
}

func stubPrintln(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := stubPrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"",
		"list",
		"l 11",
		"more",
		"m",
		"show 3",
		"refresh",
		"stats",
		"foobar",
		"exit",
		"stats",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	want := []string{"list 0", "list 10", "more", "more", "show 3", "refresh", "stats"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}

	joined := strings.Join(*out, "\n")
	for _, s := range []string{"Available commands", "Unknown command: foobar", "Bye!"} {
		if !strings.Contains(joined, s) {
			t.Fatalf("output missing %q:\n%s", s, joined)
		}
	}
}

func TestRunREPL_UsageErrors(t *testing.T) {
	out := stubPrintln(t)

	input := strings.NewReader("show\nshow x\nlist 0\nlist abc\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("expected no calls, got %v", exec.calls)
	}
	joined := strings.Join(*out, "\n")
	if strings.Count(joined, "Usage: show <n>") != 2 || strings.Count(joined, "Usage: list [from]") != 2 {
		t.Fatalf("unexpected output:\n%s", joined)
	}
}

func TestRunREPL_PrintsHandlerErrorsAndStopsOnEOF(t *testing.T) {
	out := stubPrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, bufio.NewScanner(strings.NewReader("stats")))

	if len(exec.calls) != 1 {
		t.Fatalf("expected one call, got %v", exec.calls)
	}
	if !strings.Contains(strings.Join(*out, "\n"), "Error: boom") {
		t.Fatalf("error not printed: %v", *out)
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	stubPrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, bufio.NewScanner(strings.NewReader("stats\n")))
	if len(exec.calls) != 0 {
		t.Fatalf("expected no calls after cancel, got %v", exec.calls)
	}
}
