// Package livetable renders a periodically refreshed, human-readable dump
// of every live channel value, the --live-data view named in §6's CLI
// surface. It is the one place in this tree that is allowed to be small:
// the original bridge's own print_live_data was a best-effort debugging aid,
// not a protocol component, and stays that way here -- just upgraded from a
// bare terminal clear+print loop to a proper gocui view, the same shape
// go1090's aircraft table uses (one "status" view plus one scrolling list
// view, redrawn from a ticker via g.Update).
package livetable

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jroimartin/gocui"

	"github.com/solway-marine/fastnetbridge/livestore"
	"github.com/solway-marine/fastnetbridge/registry"
)

// RefreshInterval is how often the table redraws from the live store.
const RefreshInterval = 500 * time.Millisecond

// Table is the gocui-backed live-data view.
type Table struct {
	store *livestore.Store
	gui   *gocui.Gui
}

// New creates a Table bound to store. Call Run to start it; Run blocks until
// ctx is canceled or the user quits with Ctrl-C.
func New(store *livestore.Store) (*Table, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("livetable: init terminal ui: %w", err)
	}
	t := &Table{store: store, gui: g}
	g.SetManagerFunc(t.layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

func quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Table) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView("status", 0, 0, maxX-1, 2); err == gocui.ErrUnknownView {
		v.Title = " fastnetbridge "
		fmt.Fprintln(v, " waiting for data...")
	} else if err != nil {
		return err
	}
	if v, err := g.SetView("channels", 0, 3, maxX-1, maxY-1); err == gocui.ErrUnknownView {
		v.Title = " live channels "
		v.Wrap = false
	} else if err != nil {
		return err
	}
	return nil
}

func (t *Table) render(g *gocui.Gui) error {
	status, err := g.View("status")
	if err != nil {
		return err
	}
	status.Clear()
	fmt.Fprintf(status, " last refresh: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	view, err := g.View("channels")
	if err != nil {
		return err
	}
	view.Clear()
	fmt.Fprintln(view, " CHANNEL                         VALUE")
	fmt.Fprintln(view, " ==================================================")

	snapshot := t.store.Snapshot()
	ids := make([]byte, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		rec := snapshot[id]
		fmt.Fprintf(view, " %-30s %s\n", registry.ChannelName(id), rec.Value.String())
	}
	return nil
}

// Run starts the redraw ticker and the gocui main loop; it blocks until ctx
// is canceled or the user presses Ctrl-C.
func (t *Table) Run(ctx context.Context) error {
	defer t.gui.Close()

	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				t.gui.Update(func(g *gocui.Gui) error { return gocui.ErrQuit })
				return
			case <-ticker.C:
				t.gui.Update(t.render)
			}
		}
	}()

	if err := t.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}
