package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/candidatetracker/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	role() string

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Apply(ctx context.Context) error
	Attach(ctx context.Context, args []string) error

	List(ctx context.Context) error
	SetFilter(ctx context.Context, args []string) error
	ResetFilter(ctx context.Context) error
	Locations(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Export(ctx context.Context) error
	Refresh(ctx context.Context) error
	Stats(ctx context.Context) error
}

// commands lists what each role may run, in help order. The empty role is
// a signed-out user.
var commands = map[string][]string{
	"":                   {"register", "login", "exit"},
	common.RoleCandidate: {"apply", "attach", "logout", "exit"},
	common.RoleAdmin: {
		"list", "filter", "reset", "locations", "show", "delete",
		"export", "refresh", "stats", "logout", "exit",
	},
}

func allowedFor(role, cmd string) bool {
	for _, c := range commands[role] {
		if c == cmd {
			return true
		}
	}
	return false
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. Commands the
// current role may not run are reported as unknown. The loop exits on EOF or
// on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ct %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]
		if cmd == "quit" {
			cmd = "exit"
		}

		if cmd == "help" {
			printlnFn("Available commands: " + strings.Join(commands[a.role()], ", "))
			continue
		}
		if !allowedFor(a.role(), cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "apply":
			_ = a.Apply(ctx)
		case "attach":
			_ = a.Attach(ctx, args)
		case "list":
			_ = a.List(ctx)
		case "filter":
			_ = a.SetFilter(ctx, args)
		case "reset":
			_ = a.ResetFilter(ctx)
		case "locations":
			_ = a.Locations(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "export":
			_ = a.Export(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "exit":
			printlnFn("Bye!")
			return
		}
	}
}
