package tile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const headerPrefix = "Tile "

// Parse reads tiles in the text format: blocks separated by blank lines, each
// a "Tile <id>:" header followed by N rows of N '#' or '.' characters. The
// first row of the first tile fixes N for the whole input.
//
// Parse fails with a [*ParseError] on the first malformed line; no partial
// set is returned.
func Parse(r io.Reader) (*Set, error) {
	p := parser{seen: make(map[int]bool)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.feed(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tiles: %w", err)
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	return NewSet(p.tiles...)
}

// ParseString is a convenience wrapper around [Parse].
func ParseString(s string) (*Set, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	tiles  []Tile
	seen   map[int]bool
	cur    *Tile
	header int
	line   int
	size   int
}

func (p *parser) feed(line string) error {
	if strings.TrimSpace(line) == "" {
		return p.flush()
	}
	if p.cur == nil {
		id, err := parseHeader(line)
		if err != nil {
			return &ParseError{Line: p.line, Msg: err.Error()}
		}
		if p.seen[id] {
			return &ParseError{Line: p.line, TileID: id, Msg: "duplicate tile id"}
		}
		p.seen[id] = true
		p.cur = &Tile{ID: id}
		p.header = p.line
		return nil
	}

	if p.size == 0 {
		p.size = len(line)
	}
	if len(p.cur.Pixels) == p.size {
		return &ParseError{Line: p.line, TileID: p.cur.ID, Msg: fmt.Sprintf("expected blank line after %d rows", p.size)}
	}
	if len(line) != p.size {
		return &ParseError{Line: p.line, TileID: p.cur.ID, Msg: fmt.Sprintf("row has %d pixels, want %d", len(line), p.size)}
	}
	row := make([]bool, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '#':
			row[i] = true
		case '.':
		default:
			return &ParseError{Line: p.line, TileID: p.cur.ID, Msg: fmt.Sprintf("invalid pixel %q at column %d", line[i], i+1)}
		}
	}
	p.cur.Pixels = append(p.cur.Pixels, row)
	return nil
}

// flush closes the tile being read, if any.
func (p *parser) flush() error {
	if p.cur == nil {
		return nil
	}
	if len(p.cur.Pixels) == 0 {
		return &ParseError{Line: p.header, TileID: p.cur.ID, Msg: "tile has no pixel rows"}
	}
	if len(p.cur.Pixels) != p.size {
		return &ParseError{Line: p.header, TileID: p.cur.ID, Msg: fmt.Sprintf("expected %d rows, got %d", p.size, len(p.cur.Pixels))}
	}
	p.tiles = append(p.tiles, *p.cur)
	p.cur = nil
	return nil
}

func parseHeader(line string) (int, error) {
	rest, ok := strings.CutPrefix(line, headerPrefix)
	if !ok {
		return 0, fmt.Errorf("expected %q header, got %q", "Tile <id>:", line)
	}
	num, ok := strings.CutSuffix(strings.TrimSpace(rest), ":")
	if !ok {
		return 0, fmt.Errorf("header %q is missing the trailing colon", line)
	}
	id, err := strconv.Atoi(num)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("tile id %q is not a positive integer", num)
	}
	return id, nil
}
