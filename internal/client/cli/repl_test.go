package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	manager  bool

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isManager() bool  { return f.manager }

func (f *fakeExec) record(name string) func(context.Context, []string) error {
	return func(_ context.Context, args []string) error {
		f.calls = append(f.calls, name)
		f.args = append(f.args, args)
		return nil
	}
}

func (f *fakeExec) commands() map[string]command {
	return map[string]command{
		"login": {usage: "login", run: func(ctx context.Context, args []string) error {
			f.loggedIn = true
			return f.record("login")(ctx, args)
		}},
		"logout": {usage: "logout", auth: true, run: func(ctx context.Context, args []string) error {
			f.loggedIn = false
			return f.record("logout")(ctx, args)
		}},
		"leaves":       {usage: "leaves", auth: true, run: f.record("leaves")},
		"applications": {usage: "applications", auth: true, manager: true, run: f.record("applications")},
		"deluser": {usage: "deluser <id>", auth: true, manager: true, run: func(context.Context, []string) error {
			return errUsage
		}},
	}
}

func runLines(t *testing.T, f *fakeExec, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), f, func() string { return "(s)" }, in, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	f := &fakeExec{}
	out := runLines(t, f,
		"help",
		"leaves",
		"login",
		"leaves 2025",
		"",
		"applications",
		"foobar",
		"logout",
		"exit",
		"leaves",
	)

	assert.Equal(t, []string{"login", "leaves", "logout"}, f.calls)
	assert.Equal(t, []string{"2025"}, f.args[1])
	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "Not available for your role")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "hrm (s)> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_HelpDependsOnState(t *testing.T) {
	out := runLines(t, &fakeExec{}, "help", "quit")
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "leaves")

	out = runLines(t, &fakeExec{loggedIn: true, manager: true}, "help", "quit")
	assert.Contains(t, out, "applications")
	assert.NotContains(t, out, "  login")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	f := &fakeExec{loggedIn: true, manager: true}
	out := runLines(t, f, "deluser", "login")

	assert.Contains(t, out, "Usage: deluser <id>")
	assert.Contains(t, out, "Already logged in")
	assert.Empty(t, f.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("leaves\nleaves\n"))
	runREPL(ctx, f, func() string { return "" }, in, &out)

	assert.Equal(t, []string{"leaves"}, f.calls)
}
