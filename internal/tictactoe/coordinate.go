package tictactoe

import "fmt"

// Zone is the spatial class of a cell.
type Zone uint8

const (
	ZoneCorner Zone = iota
	ZoneEdge
	ZoneCenter
)

var (
	Center  = Coordinate{Row: 1, Col: 1}
	Corners = []Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	Edges   = []Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
)

func (that Zone) String() string {
	switch that {
	case ZoneCorner:
		return "corner"
	case ZoneEdge:
		return "edge"
	case ZoneCenter:
		return "center"
	default:
		return fmt.Sprintf("zone(%d)", uint8(that))
	}
}

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Zone classifies a valid coordinate. The result is undefined for invalid ones.
func (that Coordinate) Zone() Zone {
	switch {
	case that == Center:
		return ZoneCenter
	case that.Row != 1 && that.Col != 1:
		return ZoneCorner
	default:
		return ZoneEdge
	}
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
