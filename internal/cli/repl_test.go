package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}
func (f *fakeExec) Browse(ctx context.Context) error { return f.record("browse", "") }
func (f *fakeExec) Search(ctx context.Context, term string) error {
	return f.record("search", term)
}
func (f *fakeExec) Brand(ctx context.Context, name string) error { return f.record("brand", name) }
func (f *fakeExec) Condition(ctx context.Context, name string) error {
	return f.record("cond", name)
}
func (f *fakeExec) ClearFilters(ctx context.Context) error        { return f.record("clear", "") }
func (f *fakeExec) Show(ctx context.Context, id string) error     { return f.record("show", id) }
func (f *fakeExec) Order(ctx context.Context, id string) error    { return f.record("order", id) }
func (f *fakeExec) Review(ctx context.Context, id string) error   { return f.record("review", id) }
func (f *fakeExec) Favorite(ctx context.Context, id string) error { return f.record("fav", id) }
func (f *fakeExec) Listings(ctx context.Context) error            { return f.record("listings", "") }
func (f *fakeExec) Sell(ctx context.Context) error                { return f.record("sell", "") }
func (f *fakeExec) Edit(ctx context.Context, id string) error     { return f.record("edit", id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error   { return f.record("delete", id) }
func (f *fakeExec) Orders(ctx context.Context) error              { return f.record("orders", "") }
func (f *fakeExec) Dashboard(ctx context.Context) error           { return f.record("dashboard", "") }
func (f *fakeExec) Advance(ctx context.Context, id string) error  { return f.record("advance", id) }
func (f *fakeExec) Profile(ctx context.Context) error             { return f.record("profile", "") }
func (f *fakeExec) EditProfile(ctx context.Context) error         { return f.record("editprofile", "") }
func (f *fakeExec) ChangePassword(ctx context.Context) error      { return f.record("passwd", "") }

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommandsWithArgs(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"browse",
		"search air max",
		"brand NIKE",
		"show 42",
		"advance 7",
		"foobar",
		"",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(input), nil)

	want := []string{"login", "browse", "search", "brand", "show", "advance"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}

	wantArgs := []string{"", "", "air max", "NIKE", "42", "7"}
	for i, a := range exec.args {
		if a != wantArgs[i] {
			t.Fatalf("args = %v, want %v", exec.args, wantArgs)
		}
	}
}

func TestRunREPL_AfterHookRunsPerCommand(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("browse\nhelp\nexit\n")
	exec := &fakeExec{}

	flushed := 0
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(input),
		func() { flushed++ })

	if flushed != 2 {
		t.Fatalf("after hook ran %d times, want 2", flushed)
	}
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("browse\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(input), nil)

	if len(exec.calls) != 1 || exec.calls[0] != "browse" {
		t.Fatalf("calls = %v", exec.calls)
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	muteOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.NewReader("browse\nexit\n")
	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "guest" }, bufio.NewScanner(input), nil)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
