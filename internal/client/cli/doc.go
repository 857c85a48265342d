// Package cli provides the interactive randomusers terminal client.
//
// It wires configuration, the local SQLite cache, the HTTP fetcher, the
// fetch coordinator and the paging presenter, then runs a REPL on top of
// them. The presenter lives on an event loop goroutine; REPL commands reach
// it through loop.Call and its notifications are printed by terminalView.
//
// Commands:
//   - list [from]  show a window of rows starting at row from
//   - more         show the next window
//   - show <n>     show details of row n
//   - refresh      start over with a new seed
//   - stats        counts, seed and presenter state
//   - exit | quit  leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
