package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/luggage/pkg/baggage"
	"tableflip.dev/luggage/pkg/catalog"
)

// NameWidth is the widest item name or nickname printed before truncation.
const NameWidth = 40

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1712345678901-a1b2c3d4  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

// Header prints the baggage title line: type, nickname and packed progress.
func (pp *PrettyPrint) Header(b baggage.Baggage, collapsed bool) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)

	if pp.ShowID {
		pp.id(b.ID)
	}
	marker := "▾"
	if collapsed {
		marker = "▸"
	}
	_, _ = t.Fprintf(pp.out(), "%s %s", marker, b.Type.Label())
	if b.Nickname != "" {
		_, _ = t.Fprintf(pp.out(), " · %s", Clamp(b.Nickname))
	}
	packed, total := b.Counts()
	progress := c
	if total > 0 && packed == total {
		progress = color.New(color.FgGreen)
	}
	_, _ = progress.Fprintf(pp.out(), "  %d/%d packed\n", packed, total)
}

// Baggage prints one baggage and, unless collapsed, its items.
func (pp *PrettyPrint) Baggage(b baggage.Baggage, collapsed bool) {
	pp.Header(b, collapsed)
	if collapsed {
		return
	}
	if len(b.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), "   no items\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	for _, it := range b.Items {
		if pp.ShowID {
			pp.id(it.ID)
		}
		check := "[ ]"
		style := t
		if it.Packed {
			check = "[x]"
			style = done
		}
		_, _ = t.Fprintf(pp.out(), "   %s %s ", check, catalog.Emoji(it.Icon))
		_, _ = style.Fprint(pp.out(), Clamp(it.Name))
		if it.Quantity > 1 {
			_, _ = t.Fprintf(pp.out(), " ×%d", it.Quantity)
		}
		_, _ = t.Fprintln(pp.out())
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Collection prints every baggage honoring the collapse map.
func (pp *PrettyPrint) Collection(c baggage.Collection, collapsed baggage.CollapseMap) {
	if len(c) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), "No luggage yet. Add some with `luggage bag add carry-on`.\n")
		return
	}
	for _, b := range c {
		pp.Baggage(b, collapsed[b.ID])
	}
}

func (pp *PrettyPrint) id(id string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
	} else {
		_, _ = y.Fprint(pp.out(), " ")
	}
}

// Clamp shortens s to NameWidth cells.
func Clamp(s string) string {
	return truncate.StringWithTail(s, NameWidth, "…")
}
