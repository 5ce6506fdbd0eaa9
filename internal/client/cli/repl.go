package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var errUsage = errors.New("usage")

// command is a REPL command. Handlers print their own output and report
// failures through the returned error; errUsage makes the REPL print usage.
type command struct {
	usage string
	help  string
	// auth commands are offered only while signed in, manager commands only
	// to admin, superadmin and hr.
	auth    bool
	manager bool
	run     func(ctx context.Context, args []string) error
}

// execIface is the surface runREPL drives. App satisfies it; tests provide
// a stub.
type execIface interface {
	isLoggedIn() bool
	isManager() bool
	commands() map[string]command
}

// runREPL reads commands line by line and dispatches them until EOF or
// "exit"/"quit". Command errors never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	cmds := a.commands()

	for {
		fmt.Fprintf(w, "hrm %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			printHelp(w, cmds, a.isLoggedIn(), a.isManager())
			continue
		}

		cmd, ok := cmds[name]
		switch {
		case !ok:
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		case cmd.auth && !a.isLoggedIn():
			fmt.Fprintln(w, "Please log in first")
			continue
		case !cmd.auth && a.isLoggedIn():
			fmt.Fprintln(w, "Already logged in")
			continue
		case cmd.manager && !a.isManager():
			fmt.Fprintln(w, "Not available for your role")
			continue
		}

		if err := cmd.run(ctx, args); errors.Is(err, errUsage) {
			fmt.Fprintln(w, "Usage:", cmd.usage)
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func available(c command, loggedIn, manager bool) bool {
	if c.auth != loggedIn {
		return false
	}
	return !c.manager || manager
}

func printHelp(w io.Writer, cmds map[string]command, loggedIn, manager bool) {
	names := make([]string, 0, len(cmds))
	for name, c := range cmds {
		if available(c, loggedIn, manager) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Available commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-40s %s\n", cmds[name].usage, cmds[name].help)
	}
	fmt.Fprintf(w, "  %-40s %s\n", "help", "show this list")
	fmt.Fprintf(w, "  %-40s %s\n", "exit", "leave the program")
}
