package tile

import (
	"fmt"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
)

// ParseError reports malformed tile input: a bad header, a duplicate id,
// wrong dimensions or an invalid pixel character. Line is 1-based and zero
// when the problem is not tied to a single line.
type ParseError struct {
	Line   int
	TileID int
	Msg    string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.TileID > 0:
		return fmt.Sprintf("parse tiles: line %d (tile %d): %s", e.Line, e.TileID, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("parse tiles: line %d: %s", e.Line, e.Msg)
	case e.TileID > 0:
		return fmt.Sprintf("parse tiles: tile %d: %s", e.TileID, e.Msg)
	}
	return "parse tiles: " + e.Msg
}

// Code returns [tserr.ErrCodeInvalidTile].
func (e *ParseError) Code() tserr.Code { return tserr.ErrCodeInvalidTile }
