package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context, from int) error
	More(ctx context.Context) error
	Show(ctx context.Context, n int) error
	Refresh(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a. The loop
// exits on scanner EOF, on ctx cancellation, or when the user types "exit"
// or "quit". Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn("ru> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist [from], (m)ore, show <n>, refresh, stats, exit")

		case "l", "list":
			from := 0
			if len(args) > 0 {
				n, convErr := strconv.Atoi(args[0])
				if convErr != nil || n < 1 {
					printlnFn("Usage: list [from]")
					continue
				}
				from = n - 1
			}
			err = a.List(ctx, from)

		case "m", "more":
			err = a.More(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <n>")
				continue
			}
			n, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				printlnFn("Usage: show <n>")
				continue
			}
			err = a.Show(ctx, n)

		case "refresh":
			err = a.Refresh(ctx)

		case "stats":
			err = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
