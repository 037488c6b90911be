package render

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config configures console output.
type Config struct {
	LineWidth int            // maximum width of output lines in 'en's; 0 means unlimited
	Plain     bool           // do not use colors
	Sideways  bool           // always draw the tree sideways, root on the left
	Context   *uax11.Context // context for measuring labels; defaults to Latin
}

// ConfigFromTerminal is a simple helper for creating a Config for output
// to stdout. See ConfigFor.
func ConfigFromTerminal() *Config {
	return ConfigFor(os.Stdout)
}

// ConfigFor creates a Config for output to w.
// It checks wether w is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Output to anything other
// than a terminal is plain.
func ConfigFor(w io.Writer) *Config {
	config := &Config{LineWidth: 80, Plain: true}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		config.Plain = false
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			config.LineWidth = width
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	return config
}

// Console is a type for outputting trees to a console with a fixed width font.
//
// Trees are drawn top-down, one row per tree level, each node in its own
// column. Trees too wide for the configured line width are drawn sideways
// instead, with the root at the left and the largest key on top.
type Console struct {
	colors map[rbtree.Color]*color.Color
}

// NewConsole creates a new console renderer. colors maps node colors to
// terminal colors. It may contain just a subset of the node colors; if it is
// nil, a default palette is used.
func NewConsole(colors map[rbtree.Color]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	palette := map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed, color.Bold),
		rbtree.Black: color.New(color.FgHiBlack, color.Bold),
	}
	return palette
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Print[K any](t *rbtree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return NewConsole(nil).Fprint(os.Stdout, Layout(t), config)
}

var setupGraphemes sync.Once

// labelWidth returns the display width of a label in fixed width positions.
// uax11 classifies ASCII digits as (potential) emoji and measures them as
// wide, therefore ASCII grapheme clusters are counted as narrow up front.
func labelWidth(label string, context *uax11.Context) int {
	if isASCII(label) {
		return len(label)
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(label)
	width := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if g == "" {
			continue
		}
		if g[0] < utf8.RuneSelf {
			width++
			continue
		}
		width += uax11.StringWidth(grapheme.StringFromString(g), context)
	}
	return width
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Fprint draws placements (as computed by Layout) to w.
func (c *Console) Fprint(w io.Writer, placements []Placement, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	bw := bufio.NewWriter(w)
	if len(placements) == 0 {
		bw.WriteString("<empty>\n")
		return bw.Flush()
	}
	widths := make([]int, len(placements))
	cell := 2
	for i, p := range placements {
		widths[i] = labelWidth(p.Label, context)
		cell = max(cell, widths[i]+1)
	}
	if config.Sideways || (config.LineWidth > 0 && cell*len(placements) > config.LineWidth) {
		tracer().Debugf("render: drawing %d nodes sideways", len(placements))
		c.sideways(bw, placements, widths, config)
	} else {
		c.topDown(bw, placements, widths, cell, config)
	}
	return bw.Flush()
}

// topDown draws one text row per tree level, plus a row of branches in
// between levels.
func (c *Console) topDown(w *bufio.Writer, placements []Placement, widths []int, cell int, config *Config) {
	rows := make([][]int, depth(placements))
	for i, p := range placements {
		rows[p.Depth] = append(rows[p.Depth], i) // columns ascending
	}
	for d, row := range rows {
		if d > 0 {
			c.branches(w, placements, row, widths, cell)
		}
		pos := 0
		for _, i := range row {
			x := placements[i].Column * cell
			w.WriteString(strings.Repeat(" ", x-pos))
			c.label(w, placements[i], config)
			pos = x + widths[i]
		}
		w.WriteString("\n")
	}
}

func (c *Console) branches(w *bufio.Writer, placements []Placement, row []int, widths []int, cell int) {
	pos := 0
	for _, i := range row {
		p := placements[i]
		x := p.Column*cell + widths[i]/2
		w.WriteString(strings.Repeat(" ", x-pos))
		if p.Column < placements[p.Parent].Column {
			w.WriteString("/")
		} else {
			w.WriteString("\\")
		}
		pos = x + 1
	}
	w.WriteString("\n")
}

// sideways draws one node per line, indented by depth, largest key first.
func (c *Console) sideways(w *bufio.Writer, placements []Placement, widths []int, config *Config) {
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		w.WriteString(strings.Repeat("    ", p.Depth))
		if p.Parent >= 0 {
			if p.Column > placements[p.Parent].Column {
				w.WriteString("┌── ")
			} else {
				w.WriteString("└── ")
			}
		}
		c.label(w, p, config)
		w.WriteString("\n")
	}
}

func (c *Console) label(w io.Writer, p Placement, config *Config) {
	if !config.Plain {
		if col, ok := c.colors[p.Color]; ok {
			col.Fprint(w, p.Label)
			return
		}
	}
	io.WriteString(w, p.Label)
}
