package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bstdict"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// console holds settings for the key-order listing.
type console struct {
	LineWidth int
	Context   *uax11.Context
	keys      *color.Color
	values    *color.Color
	faint     *color.Color
}

// consoleFromTerminal checks whether stdout is a terminal, and if so reads the
// terminal's width and enables colours. Otherwise output is plain with a
// default width.
func consoleFromTerminal(colorMode string) *console {
	grapheme.SetupGraphemeClasses()
	con := &console{
		LineWidth: 78,
		Context:   uax11.ContextFromEnvironment(),
		keys:      color.New(color.FgCyan, color.Bold),
		values:    color.New(color.FgGreen),
		faint:     color.New(color.FgHiBlack),
	}
	fd := int(os.Stdout.Fd())
	isTerm := term.IsTerminal(fd)
	if isTerm {
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			con.LineWidth = w - 2
		}
	}
	switch colorMode {
	case "always":
		con.setColor(true)
	case "never":
		con.setColor(false)
	default:
		con.setColor(isTerm)
	}
	tracer().P("format", "console").Infof("setting line length to %d en", con.LineWidth)
	return con
}

func (con *console) setColor(on bool) {
	for _, c := range []*color.Color{con.keys, con.values, con.faint} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// width returns the number of fixed-width cells s occupies on a console.
func (con *console) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), con.Context)
}

// fit shortens s to at most w console cells, marking a cut with an ellipsis.
func (con *console) fit(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	if con.width(s) <= w {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := con.width(string(r))
		if used+rw > w-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	b.WriteString("…")
	return b.String()
}

// list writes one line per entry in key order: key, padding, value.
func (con *console) list(w io.Writer, dict *bstdict.Dictionary, codec keyCodec) error {
	type row struct{ key, value string }
	var rows []row
	keyWidth := 0
	for k, v := range dict.All() {
		r := row{key: codec.decode(k), value: string(v)}
		keyWidth = max(keyWidth, con.width(r.key))
		rows = append(rows, r)
	}
	keyWidth = min(keyWidth, con.LineWidth/2)
	for _, r := range rows {
		key := con.fit(r.key, keyWidth)
		pad := strings.Repeat(" ", keyWidth-con.width(key))
		room := max(con.LineWidth-keyWidth-3, 4)
		if _, err := fmt.Fprintf(w, "%s%s %s %s\n", con.keys.Sprint(key), pad,
			con.faint.Sprint("→"), con.values.Sprint(con.fit(r.value, room))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", con.faint.Sprintf("%d entries, tree height %d", dict.Len(), dict.Height()))
	return err
}
