package face

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSVG writes g as a standalone SVG document.
func WriteSVG(w io.Writer, g Geometry) error {
	var b strings.Builder
	size := num(g.Size())
	c := g.Center

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" style="display:block">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="%s" stroke="black" stroke-width="2" fill="white"/>`+"\n",
		num(c.X), num(c.Y), num(g.Radius))

	for _, t := range g.Ticks {
		fmt.Fprintf(&b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="%s"/>`+"\n",
			num(t.From.X), num(t.From.Y), num(t.To.X), num(t.To.Y), num(t.Stroke))
	}

	hand(&b, c, g.Hour, "black", "2.5")
	hand(&b, c, g.Minute, "black", "2")
	hand(&b, c, g.Second, "red", "1")

	fontSize := num(g.Radius * 0.15)
	for _, l := range g.Labels {
		fmt.Fprintf(&b, `  <text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%s" font-weight="bold">%s</text>`+"\n",
			num(l.At.X), num(l.At.Y), fontSize, l.Text)
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func hand(b *strings.Builder, from, to Point, color, width string) {
	fmt.Fprintf(b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
		num(from.X), num(from.Y), num(to.X), num(to.Y), color, width)
}

// num prints v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
