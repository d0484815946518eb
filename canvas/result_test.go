package canvas

import "testing"

func TestColoredTextProfile(t *testing.T) {
	c := MustNew(Vec2{X: 5, Y: 3})

	err := c.Text(Centered, "foo").Colored(White, NoColor).Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cell, _ := c.Get(Vec2{X: 2, Y: 1}); cell.Foreground != White {
		t.Errorf("text not colored: %v", cell.Foreground)
	}
	if cell, _ := c.Get(Vec2{X: 2, Y: 0}); cell.Foreground.Valid() {
		t.Errorf("color bled outside the profile: %v", cell.Foreground)
	}
}

func TestGrowProfileColorsWiderArea(t *testing.T) {
	c := MustNew(Vec2{X: 7, Y: 3})

	err := c.Text(Centered, "foo").
		GrowProfile(Vec2{X: 1}).
		Foreground(White).
		Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	fgAt := func(x int) bool {
		cell, _ := c.Get(Vec2{X: x, Y: 1})
		return cell.Foreground == White
	}
	if fgAt(0) || !fgAt(1) || !fgAt(3) || !fgAt(5) || fgAt(6) {
		t.Error("grown profile colored the wrong cells")
	}
}

func TestFillInsideKeepsOutline(t *testing.T) {
	c, _ := Filled(Vec2{X: 5, Y: 5}, '.', NoColor, NoColor)

	err := c.Rect(Centered, Vec2{X: 3, Y: 3}, Light).FillInside(' ').Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cell, _ := c.Get(Vec2{X: 2, Y: 0}); cell.Text != '.' {
		t.Error("outside the rect touched")
	}
	if cell, _ := c.Get(Vec2{X: 2, Y: 1}); cell.Text != '─' {
		t.Error("outline overwritten")
	}
	if cell, _ := c.Get(Vec2{X: 2, Y: 2}); cell.Text != ' ' {
		t.Error("interior not filled")
	}
}

func TestFillInsideRestoresProfile(t *testing.T) {
	c := MustNew(Vec2{X: 7, Y: 7})

	res := c.Rect(Centered, Vec2{X: 5, Y: 5}, Light).FillInside(' ')
	if err := res.Err(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	shape := res.Shape()
	if shape.Pos != Splat(1) || shape.Size != Splat(5) {
		t.Errorf("profile not restored after FillInside: %+v", shape)
	}
}

func TestDrawInsideGridVisitsEveryCell(t *testing.T) {
	c := MustNew(Vec2{X: 9, Y: 7})

	var visited []Vec2
	err := c.Grid(Centered, Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 1}, Light).
		DrawInside(func(cell *Canvas, pos Vec2) error {
			visited = append(visited, pos)
			if cell.Size() != (Vec2{X: 2, Y: 2}) {
				t.Errorf("cell window size %v", cell.Size())
			}
			return cell.Text(Centered, "ab").Err()
		}).
		Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	want := []Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if len(visited) != len(want) {
		t.Fatalf("visited %v", visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}

	// grid drawn at (1,1); the first cell interior starts at (2,2)
	if cell, _ := c.Get(Vec2{X: 2, Y: 2}); cell.Text != 'a' {
		t.Errorf("cell content misplaced: %q", cell.Text)
	}
	if cell, _ := c.Get(Vec2{X: 5, Y: 2}); cell.Text != 'a' {
		t.Errorf("second cell content misplaced: %q", cell.Text)
	}
}

func TestDrawInsideRect(t *testing.T) {
	c := MustNew(Vec2{X: 7, Y: 5})

	err := c.Rect(Centered, Vec2{X: 5, Y: 3}, Light).
		DrawInside(func(inner *Canvas, _ Vec2) error {
			if inner.Size() != (Vec2{X: 3, Y: 1}) {
				t.Errorf("inner window size %v", inner.Size())
			}
			return inner.Text(Centered, "hey").Err()
		}).
		Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cell, _ := c.Get(Vec2{X: 2, Y: 2}); cell.Text != 'h' {
		t.Errorf("inner text misplaced: %q", cell.Text)
	}
}

func TestColoredGridColorsCellsAndBorders(t *testing.T) {
	c := MustNew(Vec2{X: 7, Y: 7})

	err := c.GridAbsolute(Zero, Splat(2), Splat(2), Light).
		Background(Black).
		Err()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}

	// the profile's oversized cells cover the shared border lines
	if cell, _ := c.Get(Vec2{X: 3, Y: 3}); cell.Background != Black {
		t.Error("shared border not colored")
	}
	if cell, _ := c.Get(Vec2{X: 1, Y: 1}); cell.Background != Black {
		t.Error("cell interior not colored")
	}
}

func TestDrawerErrorPropagates(t *testing.T) {
	c := MustNew(Vec2{X: 7, Y: 5})

	caught := 0
	catcher := c.WhenError(func(*Canvas, error) error {
		caught++
		return nil
	})

	err := catcher.Rect(Centered, Vec2{X: 5, Y: 3}, Light).
		DrawInside(func(inner *Canvas, _ Vec2) error {
			return inner.Text(Centered, "much too long").Err()
		}).
		Err()
	if err == nil {
		t.Fatal("expected error from drawer")
	}
	if caught == 0 {
		t.Error("drawer error bypassed the catcher")
	}
}

func TestResultChainsCanvasOps(t *testing.T) {
	c := MustNew(Vec2{X: 5, Y: 5})

	err := c.Set(Vec2{X: 1, Y: 1}, 'a').
		TextAbsolute(Vec2{X: 0, Y: 3}, "hello").
		Colored(White, NoColor).
		Set(Vec2{X: 3, Y: 1}, 'b').
		Err()
	if err != nil {
		t.Fatalf("chain: %v", err)
	}

	if cell, _ := c.Get(Vec2{X: 1, Y: 3}); cell.Text != 'e' {
		t.Errorf("text: %q", cell.Text)
	}
	if cell, _ := c.Get(Vec2{X: 3, Y: 3}); cell.Foreground != White {
		t.Errorf("color: %v", cell.Foreground)
	}
	if cell, _ := c.Get(Vec2{X: 3, Y: 1}); cell.Text != 'b' {
		t.Errorf("set after colored: %q", cell.Text)
	}
}
