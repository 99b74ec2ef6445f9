package canvas

// BorderStyle holds the characters used by Border.
type BorderStyle struct {
	Corner rune
	Top    rune
	Bottom rune
	Left   rune
	Right  rune
}

// SimpleBorderStyle is the classic +-| frame.
var SimpleBorderStyle = NewBorderStyle('+', '-', '|')

// NewBorderStyle returns a style whose top and bottom edges share one
// character and whose left and right edges share another.
func NewBorderStyle(corner, horizontal, vertical rune) BorderStyle {
	return BorderStyle{
		Corner: corner,
		Top:    horizontal,
		Bottom: horizontal,
		Left:   vertical,
		Right:  vertical,
	}
}

// FullBorderStyle returns a style with a distinct character for every edge.
func FullBorderStyle(corner, top, bottom, left, right rune) BorderStyle {
	return BorderStyle{
		Corner: corner,
		Top:    top,
		Bottom: bottom,
		Left:   left,
		Right:  right,
	}
}
