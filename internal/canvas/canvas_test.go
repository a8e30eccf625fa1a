package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

type rectOp struct {
	X, Y, W, H float64
	Color      colorful.Color
}

type lineOp struct {
	X0, Y0, X1, Y1 float64
	Color          colorful.Color
}

// recordingSurface captures drawing operations and executes posted work
// immediately, acting as its own owning goroutine.
type recordingSurface struct {
	w, h    int
	fills   []rectOp
	strokes []rectOp
	lines   []lineOp
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) FillRect(x, y, w, h float64, c colorful.Color) {
	s.fills = append(s.fills, rectOp{x, y, w, h, c})
}

func (s *recordingSurface) StrokeRect(x, y, w, h float64, c colorful.Color) {
	s.strokes = append(s.strokes, rectOp{x, y, w, h, c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, c colorful.Color) {
	s.lines = append(s.lines, lineOp{x0, y0, x1, y1, c})
}

func (s *recordingSurface) Post(fn func()) bool {
	fn()
	return false
}

func (s *recordingSurface) reset() {
	s.fills, s.strokes, s.lines = nil, nil, nil
}

func (s *recordingSurface) ops() int {
	return len(s.fills) + len(s.strokes) + len(s.lines)
}

// newTestCanvas builds a canvas on a recording surface with the write
// throttle disabled.
func newTestCanvas(t *testing.T, rows, cols, w, h int) (*Canvas, *recordingSurface) {
	t.Helper()
	s := &recordingSurface{w: w, h: h}
	c, err := New(rows, cols, s)
	require.NoError(t, err)
	c.throttle = 0
	s.reset()
	return c, s
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	s := &recordingSurface{w: 10, h: 10}
	for _, tc := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		if _, err := New(tc[0], tc[1], s); err == nil {
			t.Fatalf("New(%d, %d) succeeded, want error", tc[0], tc[1])
		}
	}
}

func TestSetColorRoundTrip(t *testing.T) {
	c, _ := newTestCanvas(t, 3, 3, 30, 30)

	want := colorful.Color{R: 0.25, G: 0.5, B: 0.75}
	c.SetColor(1, 2, want)

	require.Equal(t, want.R, c.Red(1, 2))
	require.Equal(t, want.G, c.Green(1, 2))
	require.Equal(t, want.B, c.Blue(1, 2))
}

func TestUnsetCellReportsDefaultColor(t *testing.T) {
	c, _ := newTestCanvas(t, 2, 2, 20, 20)
	require.Equal(t, Black, c.At(0, 0))

	c.SetDefaultColor(colorful.Color{R: 0.1, G: 0.2, B: 0.3})
	require.Equal(t, 0.1, c.Red(1, 1))
	require.Equal(t, 0.2, c.Green(1, 1))
	require.Equal(t, 0.3, c.Blue(1, 1))
}

func TestOutOfRangeQueryReportsDefaultColor(t *testing.T) {
	c, _ := newTestCanvas(t, 2, 2, 20, 20)
	def := colorful.Color{R: 0.4, G: 0.4, B: 0.4}
	c.SetDefaultColor(def)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {10, 10}} {
		require.Equal(t, def, c.At(rc[0], rc[1]), "coordinates %v", rc)
	}
}

func TestSetColorOutOfRangeIgnored(t *testing.T) {
	c, s := newTestCanvas(t, 2, 2, 20, 20)

	c.SetColor(5, 5, colorful.Color{R: 1})
	c.SetColor(-1, 0, colorful.Color{R: 1})

	require.Equal(t, 0, s.ops(), "out-of-range writes must not draw")
	require.Equal(t, Black, c.At(0, 0))
}

func TestSetColorClampsChannels(t *testing.T) {
	c, _ := newTestCanvas(t, 1, 1, 10, 10)

	c.SetColor(0, 0, colorful.Color{R: 300.0 / 255.0, G: -10.0 / 255.0, B: 0.5})
	require.Equal(t, 1.0, c.Red(0, 0))
	require.Equal(t, 0.0, c.Green(0, 0))
	require.Equal(t, 0.5, c.Blue(0, 0))
}

func TestSettersRedrawOnlyOnChange(t *testing.T) {
	c, s := newTestCanvas(t, 2, 2, 20, 20)

	c.SetUse3D(true) // already true at construction
	require.Equal(t, 0, s.ops(), "unchanged use3D must not redraw")
	c.SetUse3D(false)
	require.Greater(t, s.ops(), 0)

	s.reset()
	c.SetDefaultColor(Black) // already black
	require.Equal(t, 0, s.ops(), "unchanged default color must not redraw")
	c.SetDefaultColor(colorful.Color{R: 1})
	first := s.ops()
	require.Greater(t, first, 0)
	c.SetDefaultColor(colorful.Color{R: 1})
	require.Equal(t, first, s.ops(), "repeated default color must not redraw")

	s.reset()
	grout := Gray
	c.SetGroutingColor(&grout) // already gray
	require.Equal(t, 0, s.ops(), "unchanged grouting must not redraw")
	c.SetGroutingColor(nil)
	require.Greater(t, s.ops(), 0)
	first = s.ops()
	c.SetGroutingColor(nil)
	require.Equal(t, first, s.ops(), "repeated nil grouting must not redraw")

	s.reset()
	c.SetAlwaysDrawGrouting(false) // already false
	require.Equal(t, 0, s.ops())
	c.SetAlwaysDrawGrouting(true)
	require.Greater(t, s.ops(), 0)
}

func TestUnsetCellsDrawFlat(t *testing.T) {
	c, s := newTestCanvas(t, 2, 2, 20, 20)
	c.SetGroutingColor(nil)
	s.reset()

	c.ForceRedraw()

	require.Len(t, s.fills, 4, "one flat fill per cell")
	require.Empty(t, s.lines, "unset cells must not bevel even with use3D on")
	require.Empty(t, s.strokes)
	want := rectOp{0, 0, 10, 10, Black}
	if diff := cmp.Diff(want, s.fills[0]); diff != "" {
		t.Fatalf("first cell fill mismatch (-want +got):\n%s", diff)
	}
}

func TestGroutingInsetsFillAndStrokesBorder(t *testing.T) {
	c, s := newTestCanvas(t, 1, 1, 10, 10)
	c.SetUse3D(false)
	s.reset()

	c.SetColor(0, 0, colorful.Color{R: 1})

	require.Len(t, s.fills, 1)
	if diff := cmp.Diff(rectOp{1, 1, 8, 8, colorful.Color{R: 1}}, s.fills[0]); diff != "" {
		t.Fatalf("inset fill mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, s.strokes, 1)
	if diff := cmp.Diff(rectOp{0.5, 0.5, 9, 9, Gray}, s.strokes[0]); diff != "" {
		t.Fatalf("grouting stroke mismatch (-want +got):\n%s", diff)
	}
}

func TestGroutingSkippedForUnsetCellsUnlessAlways(t *testing.T) {
	c, s := newTestCanvas(t, 1, 2, 20, 10)
	c.SetUse3D(false)
	s.reset()

	c.ForceRedraw()
	require.Empty(t, s.strokes, "unset cells must not grout by default")
	require.Len(t, s.fills, 2)
	// Full cell rectangles, no inset.
	require.Equal(t, rectOp{0, 0, 10, 10, Black}, s.fills[0])

	s.reset()
	c.SetAlwaysDrawGrouting(true)
	require.Len(t, s.strokes, 2, "alwaysDrawGrouting grouts unset cells")
	require.Equal(t, rectOp{1, 1, 8, 8, Black}, s.fills[0])
}

func TestBevelClampsBaseBrightness(t *testing.T) {
	c, s := newTestCanvas(t, 1, 1, 10, 10)
	c.SetGroutingColor(nil)
	s.reset()

	// Pure white clamps to brightness 0.8 for the base fill.
	c.SetColor(0, 0, colorful.Color{R: 1, G: 1, B: 1})
	require.Len(t, s.fills, 1)
	base := s.fills[0].Color
	require.InDelta(t, 0.8, base.R, 1e-9)
	require.InDelta(t, 0.8, base.G, 1e-9)
	require.InDelta(t, 0.8, base.B, 1e-9)

	// Highlight at brightness 1.0 on top and left, shadow at 0.6 on
	// bottom and right.
	require.Len(t, s.lines, 4)
	require.InDelta(t, 1.0, s.lines[0].Color.R, 1e-9)
	require.InDelta(t, 1.0, s.lines[1].Color.R, 1e-9)
	require.InDelta(t, 0.6, s.lines[2].Color.R, 1e-9)
	require.InDelta(t, 0.6, s.lines[3].Color.R, 1e-9)

	s.reset()
	// Pure black clamps up to 0.2.
	c.SetColor(0, 0, colorful.Color{})
	require.Len(t, s.fills, 1)
	require.InDelta(t, 0.2, s.fills[0].Color.R, 1e-9)

	s.reset()
	// Mid brightness is kept as-is.
	c.SetColor(0, 0, colorful.Color{R: 0.5})
	require.Len(t, s.fills, 1)
	require.InDelta(t, 0.5, s.fills[0].Color.R, 1e-9)
}

func TestBevelStrokeGeometry(t *testing.T) {
	c, s := newTestCanvas(t, 1, 1, 10, 10)
	c.SetGroutingColor(nil)
	s.reset()

	c.SetColor(0, 0, colorful.Color{R: 0.5})

	require.Len(t, s.lines, 4)
	want := []lineOp{
		{0.5, 0.5, 9.5, 0.5, s.lines[0].Color}, // top, inset half a unit
		{0.5, 0.5, 0.5, 9.5, s.lines[1].Color}, // left
		{9.5, 1.5, 9.5, 9.5, s.lines[2].Color}, // right, corner stepped in
		{1.5, 9.5, 9.5, 9.5, s.lines[3].Color}, // bottom, corner stepped in
	}
	if diff := cmp.Diff(want, s.lines); diff != "" {
		t.Fatalf("bevel strokes mismatch (-want +got):\n%s", diff)
	}
}

func TestAutopaintBatching(t *testing.T) {
	c, s := newTestCanvas(t, 2, 2, 20, 20)
	c.SetAutopaint(false)

	c.SetColor(0, 0, colorful.Color{R: 1})
	c.SetColor(1, 1, colorful.Color{B: 1})
	require.Equal(t, 0, s.ops(), "writes must not paint while autopaint is off")
	require.Equal(t, 1.0, c.Red(0, 0), "the store still updates")

	c.ForceRedraw()
	require.Greater(t, s.ops(), 0)
}

func TestDrawUsesCurrentSurfaceSize(t *testing.T) {
	c, s := newTestCanvas(t, 2, 2, 20, 20)
	c.SetGroutingColor(nil)
	c.SetUse3D(false)
	s.reset()

	c.ForceRedraw()
	require.Equal(t, rectOp{0, 0, 10, 10, Black}, s.fills[0])

	// Geometry follows a surface resize with no explicit notification.
	s.w, s.h = 40, 40
	s.reset()
	c.ForceRedraw()
	require.Equal(t, rectOp{0, 0, 20, 20, Black}, s.fills[0])
}
