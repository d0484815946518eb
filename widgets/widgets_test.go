package widgets

import (
	"testing"

	"github.com/lixenwraith/canvas/canvas"
	"github.com/lixenwraith/canvas/themes"
)

func TestHighlightedTextDraw(t *testing.T) {
	c := canvas.MustNew(canvas.Vec2{X: 7, Y: 3})

	err := c.Draw(canvas.Centered, HighlightedText("foo", canvas.White, canvas.Black)).Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	// ·······
	// ·-foo-· (highlight represented by -)
	// ·······
	if cell, _ := c.Get(canvas.Vec2{X: 2, Y: 1}); cell.Text != 'f' {
		t.Errorf("text misplaced: %q", cell.Text)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 1, Y: 1}); cell.Foreground != canvas.White || cell.Background != canvas.Black {
		t.Errorf("pad cell not highlighted: %+v", cell)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 0, Y: 1}); cell.Foreground.Valid() {
		t.Error("highlight bled outside the widget")
	}
}

func TestHighlightedTextSize(t *testing.T) {
	w := highlightedText{text: "foo"}
	size, err := w.Size(canvas.Zero)
	if err != nil {
		t.Fatal(err)
	}
	if size != (canvas.Vec2{X: 5, Y: 1}) {
		t.Errorf("size %v", size)
	}
}

func TestToggleMark(t *testing.T) {
	c := canvas.MustNew(canvas.Vec2{X: 9, Y: 3})

	err := c.Draw(canvas.Centered, Toggle("foo", false, canvas.White, canvas.Black)).Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 6, Y: 1}); cell.Text != '✕' {
		t.Errorf("expected cross, got %q", cell.Text)
	}

	c = canvas.MustNew(canvas.Vec2{X: 9, Y: 3})
	c.Draw(canvas.Centered, Toggle("foo", true, canvas.White, canvas.Black)).Discard()
	if cell, _ := c.Get(canvas.Vec2{X: 6, Y: 1}); cell.Text != '✓' {
		t.Errorf("expected check, got %q", cell.Text)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		max     int
		fromEnd bool
		want    string
	}{
		{"fits", "hello", 10, false, "hello"},
		{"unbounded", "hello", 0, false, "hello"},
		{"cut keeps head", "hello world", 6, false, "hello…"},
		{"cut keeps tail", "hello world", 6, true, "…world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max, tt.fromEnd); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitledTextBounds(t *testing.T) {
	size := titledTextBounds("Theme", []string{"Latte", "Macchiato"}, 0)
	if size != (canvas.Vec2{X: 11, Y: 3}) {
		t.Errorf("size %v", size)
	}

	size = titledTextBounds("Theme", []string{"Latte", "Macchiato"}, 8)
	if size.X != 8 {
		t.Errorf("capped width %d", size.X)
	}
}

func TestTitledTextDraw(t *testing.T) {
	theme := themes.Mocha()
	widget := NewThemed(theme).TitledText("Theme", []string{"Latte", "Frappe", "Macchiato", "Mocha"})

	size, err := widget.Size(canvas.Zero)
	if err != nil {
		t.Fatal(err)
	}
	if size != (canvas.Vec2{X: 11, Y: 5}) {
		t.Fatalf("size %v", size)
	}

	c := canvas.MustNew(canvas.Vec2{X: 15, Y: 7})
	if err := c.Draw(canvas.Centered, widget).Err(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	// ···············
	// ··---Theme---··
	// ··   Latte   ··
	// ··  Frappe   ··
	// ·· Macchiato ··
	// ··   Mocha   ··
	// ···············
	if cell, _ := c.Get(canvas.Vec2{X: 5, Y: 1}); cell.Text != 'T' {
		t.Errorf("title misplaced: %q", cell.Text)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 5, Y: 1}); cell.Background != theme.TitledTextTitleBg() {
		t.Errorf("title background: %v", cell.Background)
	}
	// title bar spans the full width of the widget window
	if cell, _ := c.Get(canvas.Vec2{X: 2, Y: 1}); cell.Background != theme.TitledTextTitleBg() {
		t.Error("title bar not expanded to the edge")
	}
	if cell, _ := c.Get(canvas.Vec2{X: 5, Y: 2}); cell.Background != theme.TitledTextTextBg() {
		t.Errorf("row background: %v", cell.Background)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 1, Y: 1}); cell.Background.Valid() {
		t.Error("drawn outside the widget window")
	}
}

func TestSelectableStates(t *testing.T) {
	theme := themes.Frappe()

	tests := []struct {
		name      string
		selection int
		activated bool
		probe     int
		want      Selection
	}{
		{"other value deselected", 1, false, 2, Deselected},
		{"matching value selected", 2, false, 2, Selected},
		{"matching value activated", 2, true, 2, Activated},
		{"other value stays deselected when activated", 2, true, 1, Deselected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelectable(theme, tt.selection, tt.activated)
			if got := sel.State(tt.probe); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectableButtonColors(t *testing.T) {
	theme := themes.Frappe()
	sel := NewSelectable(theme, 1, false)

	c := canvas.MustNew(canvas.Vec2{X: 7, Y: 4})
	err := c.Draw(canvas.CenteredOnRow(1), sel.Button(1, "foo")).
		Draw(canvas.CenteredOnRow(2), sel.Button(2, "bar")).
		Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cell, _ := c.Get(canvas.Vec2{X: 1, Y: 1}); cell.Background != theme.ButtonBgHover() {
		t.Errorf("selected button bg: %v", cell.Background)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 1, Y: 2}); cell.Background != theme.ButtonBg() {
		t.Errorf("deselected button bg: %v", cell.Background)
	}
	if theme.ButtonBg() == theme.ButtonBgHover() {
		t.Fatal("theme cannot distinguish hover")
	}
}

func TestRollingSelectionDraw(t *testing.T) {
	c := canvas.MustNew(canvas.Vec2{X: 11, Y: 3})

	err := c.Draw(canvas.Centered, NewRollingSelection("foo", 0, canvas.White, canvas.Black)).Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	// · ← foo → ·
	if cell, _ := c.Get(canvas.Vec2{X: 2, Y: 1}); cell.Text != '←' {
		t.Errorf("left arrow: %q", cell.Text)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 8, Y: 1}); cell.Text != '→' {
		t.Errorf("right arrow: %q", cell.Text)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 5, Y: 1}); cell.Text != 'o' {
		t.Errorf("text: %q", cell.Text)
	}
}

func TestRollingSelectionEnds(t *testing.T) {
	c := canvas.MustNew(canvas.Vec2{X: 11, Y: 3})

	widget := NewRollingSelection("foo", 0, canvas.White, canvas.Black).AtStart(true)
	if err := c.Draw(canvas.Centered, widget).Err(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if cell, _ := c.Get(canvas.Vec2{X: 2, Y: 1}); cell.Text == '←' {
		t.Error("left arrow shown at the first value")
	}
	if cell, _ := c.Get(canvas.Vec2{X: 8, Y: 1}); cell.Text != '→' {
		t.Error("right arrow missing")
	}
}
