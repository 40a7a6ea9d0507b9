package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.User(); ok {
		s = fmt.Sprintf("%s [%s] ", u.Email, u.Role)
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root prints the greeting, loads data for a restored admin session, starts
// the connectivity watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to Candidate Tracker (type 'help' for commands)")

	a.probe()
	if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Signed in as %s\n", u.Email)
		a.afterSignIn(ctx)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
