package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Render writes one line per row with cells joined by delimiter. A nil format
// falls back to fmt's default formatting.
func Render[T any](g *Grid[T], delimiter string, format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				b.WriteString(delimiter)
			}
			b.WriteString(format(g.data[y*g.cols+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderDigits renders single-digit cells without a delimiter, which is the
// format ParseDigits reads back. If any cell lies outside 0-9 the cells are
// separated by a single space instead so the values stay readable.
func RenderDigits(g *Grid[int]) string {
	delimiter := ""
	for _, v := range g.data {
		if v < 0 || v > 9 {
			delimiter = " "
			break
		}
	}
	return Render(g, delimiter, strconv.Itoa)
}
