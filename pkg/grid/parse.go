package grid

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxLineLength bounds a single input line read by ReadLines.
const MaxLineLength = 16 << 20

// ReadLines reads newline-delimited text, dropping trailing blank lines and
// carriage returns. A read failure reports the 0-based row it stopped at.
func ReadLines(r io.Reader) ([]string, error) {
	return readLines(r, MaxLineLength)
}

func readLines(r io.Reader, maxLine int) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, &ParseError{Row: len(lines), Err: err}
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Parse builds a grid with one cell per character. conv maps each rune to a
// cell value; a conv error is reported with the row and column it came from.
func Parse[T any](lines []string, conv func(rune) (T, error)) (*Grid[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := utf8.RuneCountInString(lines[0])
	cells := make([]T, 0, cols*len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, &ParseError{Row: y, Column: min(n, cols), Err: ErrNonRectangular}
		}
		x := 0
		for _, r := range line {
			v, err := conv(r)
			if err != nil {
				return nil, &ParseError{Row: y, Column: x, Err: err}
			}
			cells = append(cells, v)
			x++
		}
	}
	return &Grid[T]{rows: len(lines), cols: cols, data: cells}, nil
}

// ParseDigits maps each character '0'-'9' to its integer value.
func ParseDigits(lines []string) (*Grid[int], error) {
	return Parse(lines, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, ErrInvalidDigit
		}
		return int(r - '0'), nil
	})
}

// ParseRunes keeps each character as-is.
func ParseRunes(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(r rune) (rune, error) { return r, nil })
}
