// Command sixelcat decodes DEC sixel streams and shows them in the
// terminal. Sources are files or the output of a command run under a pty;
// images are painted as half-block cells, so no pixel-capable terminal is
// needed.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	tcellsixel "git.sr.ht/~ghost08/tcell-sixel"
	"github.com/alecthomas/kong"
	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var cli struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Files containing sixel streams."`
	Exec  []string `help:"Command to run under a pty; its sixel output is captured." placeholder:"CMD"`

	MaxWidth      int  `default:"4096" help:"Maximum decoded image width in pixels."`
	MaxHeight     int  `default:"4096" help:"Maximum decoded image height in pixels."`
	MaxColors     int  `default:"1024" help:"Palette entries available to one stream."`
	MaxMemory     int  `default:"128" help:"Aggregate placement memory budget in megabytes."`
	MaxPlacements int  `default:"256" help:"Maximum simultaneous placements."`
	Dump          bool `help:"Write half-block art to stdout instead of opening a screen."`
	Verbose       bool `short:"v" help:"Log decode and eviction activity to stderr."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("sixelcat"),
		kong.Description("Decode sixel streams and display them as terminal cells."),
	)
	if cli.Verbose {
		tcellsixel.SetLogger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	ctx.FatalIfErrorf(run())
}

func run() error {
	if len(cli.Files) == 0 && len(cli.Exec) == 0 {
		return fmt.Errorf("nothing to show: pass files or --exec")
	}
	if cli.Dump {
		return runDump()
	}
	return runScreen()
}

func options() []tcellsixel.Option {
	return []tcellsixel.Option{
		tcellsixel.WithMaxImageSize(cli.MaxWidth, cli.MaxHeight),
		tcellsixel.WithMaxColors(cli.MaxColors),
		tcellsixel.WithMaxMemory(cli.MaxMemory),
		tcellsixel.WithMaxPlacements(cli.MaxPlacements),
	}
}

// feed pushes every source through the dispatcher. Non-sixel output is
// discarded; we only came for the images.
func feed(d *tcellsixel.Dispatcher) error {
	for _, name := range cli.Files {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		d.Filter(data)
	}
	if len(cli.Exec) > 0 {
		cmd := exec.Command(cli.Exec[0], cli.Exec[1:]...)
		f, err := pty.Start(cmd)
		if err != nil {
			return fmt.Errorf("starting %q: %w", cli.Exec[0], err)
		}
		defer f.Close()
		buf := make([]byte, 32*1024)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				d.Filter(buf[:n])
			}
			if err != nil {
				break // pty read errors include normal child exit
			}
		}
		_ = cmd.Wait()
	}
	return nil
}

func runScreen() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	grid := newScreenGrid(s)
	m := tcellsixel.NewManager(grid, options()...)
	m.Attach(func(ev tcell.Event) {
		if es, ok := ev.(*tcellsixel.EventSixel); ok {
			grid.advance(es.Placement())
		}
	})

	if err := feed(tcellsixel.NewDispatcher(m)); err != nil {
		return err
	}

	for {
		s.Clear()
		m.DrawCells(s)
		drawStatus(s, m)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'j':
				m.LineScrolledOut()
			}
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

func drawStatus(s tcell.Screen, m *tcellsixel.Manager) {
	w, h := s.Size()
	status := fmt.Sprintf(" %d placement(s), %d KiB | j: scroll, q: quit",
		len(m.Placements()), m.MemoryUsed()/1024)
	status = runewidth.Truncate(status, w, "…")
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, style)
	}
	x := 0
	for _, r := range status {
		s.SetContent(x, h-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// runDump decodes everything up front and writes 24-bit half-block art
// straight to stdout.
func runDump() error {
	grid := newDumpGrid()
	m := tcellsixel.NewManager(grid, options()...)
	m.Attach(func(ev tcell.Event) {
		if es, ok := ev.(*tcellsixel.EventSixel); ok {
			grid.advance(es.Placement())
		}
	})
	if err := feed(tcellsixel.NewDispatcher(m)); err != nil {
		return err
	}
	for _, p := range m.Placements() {
		dumpPlacement(os.Stdout, p, grid.cols)
	}
	return nil
}

func dumpPlacement(w io.Writer, p *tcellsixel.Placement, maxCols int) {
	img := p.Image()
	width := p.Width
	if width > maxCols {
		width = maxCols
	}
	for y := 0; y < p.Height; y += 2 {
		for x := 0; x < width; x++ {
			top := img.RGBAAt(x, y)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
			if y+1 < p.Height {
				bottom := img.RGBAAt(x, y+1)
				fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", bottom.R, bottom.G, bottom.B)
			}
			fmt.Fprint(w, "▀")
		}
		fmt.Fprint(w, "\x1b[0m\n")
	}
}

// dumpGrid is the Grid used without a screen: a virtual cursor and a
// best-effort terminal geometry from the controlling tty.
type dumpGrid struct {
	row  int
	cols int
	ws   winSize
}

func newDumpGrid() *dumpGrid {
	g := &dumpGrid{cols: 80}
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		g.cols = cols
	}
	g.ws, _ = getWinSize()
	return g
}

func (g *dumpGrid) CursorPosition() (int, int) { return g.row, 0 }

func (g *dumpGrid) VisibleRows() int { return 1 << 20 }

func (g *dumpGrid) CellSizeInPixels() (int, int) {
	return g.ws.cellSize()
}

func (g *dumpGrid) SizeInPixels() (int, int) {
	return int(g.ws.xPixel), int(g.ws.yPixel)
}

func (g *dumpGrid) advance(p *tcellsixel.Placement) {
	_, cellHeight := g.CellSizeInPixels()
	g.row += p.RowSpan(cellHeight)
}

// screenGrid adapts a tcell screen to the Grid interface.
type screenGrid struct {
	s        tcell.Screen
	ws       winSize
	row, col int
}

func newScreenGrid(s tcell.Screen) *screenGrid {
	g := &screenGrid{s: s}
	g.ws, _ = getWinSize()
	return g
}

func (g *screenGrid) CursorPosition() (int, int) { return g.row, g.col }

func (g *screenGrid) VisibleRows() int {
	_, rows := g.s.Size()
	return rows
}

func (g *screenGrid) CellSizeInPixels() (int, int) {
	return g.ws.cellSize()
}

func (g *screenGrid) SizeInPixels() (int, int) {
	return int(g.ws.xPixel), int(g.ws.yPixel)
}

func (g *screenGrid) advance(p *tcellsixel.Placement) {
	_, cellHeight := g.CellSizeInPixels()
	g.row += p.RowSpan(cellHeight)
	g.col = 0
}
