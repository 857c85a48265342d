package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
)

// terminalView prints presenter notifications. It is both the presenter's
// View and its Router.
type terminalView struct {
	mu  sync.Mutex
	out io.Writer
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{out: out}
}

func (v *terminalView) println(a ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, _ = fmt.Fprintln(v.out, a...)
}

func (v *terminalView) DataAvailable(ack func()) {
	v.println("* new users available, type 'list' or 'more'")
	ack()
}

func (v *terminalView) RefreshStarting() {
	v.println("* refreshing...")
}

func (v *terminalView) PagingEnded() {
	v.println("* no more users to load")
}

func (v *terminalView) ErrorOccurred(msg string) {
	v.println("* error:", msg)
}

func (v *terminalView) ShowDetails(u models.User) {
	v.println(formatDetails(u))
}

func formatDetails(u models.User) string {
	return fmt.Sprintf("%s (%s)\n%s\n%s\nPicture: %s",
		u.FullName(), u.Gender, u.Accessibilities(), u.ExpandedLocation(), u.Picture.Large)
}

func formatRow(index int, u models.User, loaded bool) string {
	if !loaded {
		return fmt.Sprintf("%4d  loading...", index+1)
	}
	return fmt.Sprintf("%4d  %-36s %s", index+1, u.FullName(), u.Email)
}
