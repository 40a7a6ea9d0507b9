// Package cli provides the interactive Candidate Tracker terminal client.
//
// It wires configuration, the local session store, API services and an
// interactive REPL. The commands on offer depend on the signed-in role:
//
//   - signed out: register, login
//   - candidate: apply (the application form), attach (resume upload)
//   - admin: list, filter, reset, locations, show, delete, export,
//     refresh, stats
//
// A background watcher pings the backend and shows online/offline in the
// prompt. The REPL is started via App.Root(ctx), which blocks until the
// user exits.
package cli
