package tile

import "fmt"

// Orientation describes how a tile is laid down: an optional left-right
// mirror, then Rotation clockwise quarter turns. The zero value leaves a tile
// as read from input.
type Orientation struct {
	Rotation int  `json:"rotation"`
	Mirror   bool `json:"mirror"`
}

func (o Orientation) quarterTurns() int { return mod4(o.Rotation) }

// Normalize returns o with Rotation reduced to 0..3.
func (o Orientation) Normalize() Orientation {
	return Orientation{Rotation: o.quarterTurns(), Mirror: o.Mirror}
}

// Place returns the position that the tile's own side s occupies once the
// tile is laid down with orientation o. When o.Mirror is set the clockwise
// reading of every edge is reversed as well.
func (o Orientation) Place(s Side) Side {
	base := int(s)
	if o.Mirror {
		base = -base
	}
	return Side(mod4(base + o.Rotation))
}

// Side returns the tile's own side that ends up at position pos. It is the
// inverse of [Orientation.Place].
func (o Orientation) Side(pos Side) Side {
	base := int(pos) - o.Rotation
	if o.Mirror {
		base = -base
	}
	return Side(mod4(base))
}

func (o Orientation) String() string {
	if o.Mirror {
		return fmt.Sprintf("mirror+rot%d", o.quarterTurns())
	}
	return fmt.Sprintf("rot%d", o.quarterTurns())
}

func mod4(v int) int { return ((v % 4) + 4) % 4 }
