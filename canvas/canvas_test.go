package canvas

import (
	"asciigfx/core"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rows splits a canvas into its rows for comparison.
func rows(c *Canvas) []string {
	return strings.Split(c.String(), "\n")
}

// TestNew tests canvas creation and initialization.
func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"Single", 1, 1},
		{"Small", 10, 5},
		{"Wide", 100, 10},
		{"Tall", 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.width, tt.height)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			w, h := c.Size()
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}

			matrix := c.Matrix()
			if len(matrix) != tt.height {
				t.Fatalf("Matrix height = %d, want %d", len(matrix), tt.height)
			}
			for y, row := range matrix {
				if got := string(row); got != strings.Repeat(" ", tt.width) {
					t.Errorf("row %d = %q, want %d spaces", y, got, tt.width)
				}
			}
		})
	}
}

func TestNew_InvalidDimension(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		c, err := New(size[0], size[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimension", size[0], size[1], err)
		}
		if c != nil {
			t.Errorf("New(%d, %d) returned a canvas alongside the error", size[0], size[1])
		}
	}
}

// TestReferenceScene checks the full chain against the reference drawing.
func TestReferenceScene(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	c.Background(' ').
		Border(NewBorderStyle('+', '-', '|')).
		Stroke('0').
		Line(2, 6, 6, 2).
		Text("hello", 2, 8)

	want := []string{
		"+--------+",
		"|        |",
		"|     0  |",
		"|    0   |",
		"|   0    |",
		"|  0     |",
		"| 0      |",
		"|        |",
		"| hello  |",
		"+--------+",
	}
	if c.Err() != nil {
		t.Fatalf("Err() = %v", c.Err())
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSet(t *testing.T) {
	c, _ := New(20, 10)

	tests := []struct {
		name  string
		point core.Point
		char  rune
		valid bool
	}{
		{"Origin", core.Point{X: 0, Y: 0}, 'a', true},
		{"Bottom right", core.Point{X: 19, Y: 9}, 'b', true},
		{"Out of bounds X", core.Point{X: 20, Y: 5}, 'X', false},
		{"Out of bounds Y", core.Point{X: 10, Y: 10}, 'Y', false},
		{"Negative", core.Point{X: -1, Y: 5}, 'N', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Set(tt.point, tt.char)
			if tt.valid && err != nil {
				t.Errorf("Set() error = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Set() error = %v, want ErrOutOfBounds", err)
			}

			got := c.Get(tt.point)
			if tt.valid && got != tt.char {
				t.Errorf("Get() = %c, want %c", got, tt.char)
			}
			if !tt.valid && got != ' ' {
				t.Errorf("Get() out of bounds = %q, want space", got)
			}
		})
	}
}

func TestBackground(t *testing.T) {
	c, _ := New(4, 3)
	c.Stroke('*').Line(0, 0, 3, 2).Background('#')

	want := []string{"####", "####", "####"}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("background did not erase drawing (-want +got):\n%s", diff)
	}
	if got := c.Get(core.Point{X: -1, Y: 0}); got != '#' {
		t.Errorf("Get() outside = %q, want '#'", got)
	}
}

func TestBackground_Idempotent(t *testing.T) {
	once, _ := New(6, 4)
	once.Background('.')

	twice, _ := New(6, 4)
	twice.Stroke('x').Line(0, 0, 5, 3).Background('o').Text("hi", 1, 1).Background('.')

	if diff := cmp.Diff(rows(once), rows(twice)); diff != "" {
		t.Errorf("second background should reset the grid (-once +twice):\n%s", diff)
	}
}

func TestBorder(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		style  BorderStyle
		canvas []string
	}{
		{
			name:  "Minimal",
			w:     2,
			h:     2,
			style: SimpleBorderStyle,
			canvas: []string{
				"++",
				"++",
			},
		},
		{
			name:  "Wide",
			w:     6,
			h:     3,
			style: NewBorderStyle('*', '=', '!'),
			canvas: []string{
				"*====*",
				"!    !",
				"*====*",
			},
		},
		{
			name:  "Full style",
			w:     5,
			h:     4,
			style: FullBorderStyle('o', '^', 'v', '<', '>'),
			canvas: []string{
				"o^^^o",
				"<   >",
				"<   >",
				"ovvvo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := New(tt.w, tt.h)
			c.Border(tt.style)
			if err := c.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if diff := cmp.Diff(tt.canvas, rows(c)); diff != "" {
				t.Errorf("border mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBorder_Symmetry(t *testing.T) {
	const w, h = 9, 7
	c, _ := New(w, h)
	c.Background('.').Border(NewBorderStyle('c', 'h', 'v'))

	edge := "c" + strings.Repeat("h", w-2) + "c"
	got := rows(c)
	if got[0] != edge || got[h-1] != edge {
		t.Errorf("top/bottom = %q / %q, want %q", got[0], got[h-1], edge)
	}
	for y := 1; y < h-1; y++ {
		if got[y][0] != 'v' || got[y][w-1] != 'v' {
			t.Errorf("row %d = %q, want vertical edges", y, got[y])
		}
		if got[y][1:w-1] != strings.Repeat(".", w-2) {
			t.Errorf("row %d interior = %q, want background", y, got[y][1:w-1])
		}
	}
}

func TestBorder_TooSmall(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 5}, {5, 1}} {
		c, _ := New(size[0], size[1])
		before := c.String()

		c.Border(SimpleBorderStyle).Text("x", 0, 0)

		if !errors.Is(c.Err(), ErrCanvasTooSmall) {
			t.Errorf("%dx%d: Err() = %v, want ErrCanvasTooSmall", size[0], size[1], c.Err())
		}
		if c.String() != before {
			t.Errorf("%dx%d: canvas changed after failed border: %q", size[0], size[1], c.String())
		}
	}
}

func TestStroke_IndependentOfBorder(t *testing.T) {
	c, _ := New(5, 3)
	c.Stroke('#').Border(SimpleBorderStyle).Stroke('@').Line(1, 1, 3, 1)

	want := []string{
		"+---+",
		"|@@@|",
		"+---+",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOverwriteOrder(t *testing.T) {
	c, _ := New(5, 1)
	c.Text("aaaaa", 0, 0).Stroke('b').Line(1, 0, 3, 0).Text("c", 2, 0)

	if got, want := c.String(), "abcba"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSolidBorder(t *testing.T) {
	c, _ := New(5, 4)
	c.SolidBorder('*')

	want := []string{
		"*****",
		"*   *",
		"*   *",
		"*****",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRect(t *testing.T) {
	c, _ := New(5, 5)
	c.Background('-').Fill('#').Stroke('*').Rect(2, 2, 2, 2)

	want := []string{
		"-----",
		"-***-",
		"-*#*-",
		"-***-",
		"-----",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRect_Clipped(t *testing.T) {
	c, _ := New(4, 3)
	c.Fill('#').Stroke('*').Rect(0, 0, 4, 4)

	want := []string{
		"##* ",
		"##* ",
		"*** ",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRect_NoStrokeNoFill(t *testing.T) {
	c, _ := New(5, 5)
	c.Rect(2, 2, 4, 4)

	if got := strings.TrimSpace(strings.ReplaceAll(c.String(), "\n", "")); got != "" {
		t.Errorf("Rect without stroke or fill drew %q", got)
	}
}

func TestCircle(t *testing.T) {
	c, _ := New(7, 7)
	c.Fill('o').Stroke('*').Circle(3, 3, 2)

	want := []string{
		"       ",
		"  ***  ",
		" *ooo* ",
		" *ooo* ",
		" *ooo* ",
		"  ***  ",
		"       ",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCircle_Clipped(t *testing.T) {
	c, _ := New(3, 3)
	c.Stroke('*').Circle(0, 0, 2)

	want := []string{
		"  *",
		"  *",
		"** ",
	}
	if diff := cmp.Diff(want, rows(c)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftLeft(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"One", 1, "bcdea"},
		{"Two", 2, "cdeba"},
		{"Zero", 0, "abcde"},
		{"Width", 5, "abcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := New(5, 1)
			c.Text("abcde", 0, 0).ShiftLeft(tt.n)
			if got := c.String(); got != tt.want {
				t.Errorf("ShiftLeft(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestCanvasIndependence(t *testing.T) {
	a, _ := New(3, 1)
	b, _ := New(3, 1)
	a.Stroke('a')
	b.Stroke('b')
	a.Line(0, 0, 2, 0)

	if got := a.String(); got != "aaa" {
		t.Errorf("a = %q, want %q", got, "aaa")
	}
	if got := b.String(); got != "   " {
		t.Errorf("b = %q, want untouched", got)
	}
}
