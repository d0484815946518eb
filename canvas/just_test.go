package canvas

import "testing"

func TestJustResolve(t *testing.T) {
	tests := []struct {
		name      string
		just      Just
		container Vec2
		object    Vec2
		want      Vec2
	}{
		{"Centered odd space", Centered, Vec2{X: 5, Y: 4}, Vec2{X: 3, Y: 2}, Vec2{X: 1, Y: 1}},
		{"Centered even space", Centered, Vec2{X: 5, Y: 4}, Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}},
		{"TopLeft", TopLeft, Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}},
		{"TopRight", TopRight, Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 3, Y: 1}},
		{"BottomLeft", BottomLeft, Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 2}},
		{"BottomRight", BottomRight, Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 3, Y: 2}},
		{"CenterTop", CenterTop, Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 1}},
		{"CenterBottom", CenterBottom, Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 2}},
		{"At", At(Vec2{X: 2, Y: 2}), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 2}},
		{"LeftOfRow", LeftOfRow(3), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 1}, Vec2{X: 1, Y: 3}},
		{"RightOfRow", RightOfRow(3), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 1}, Vec2{X: 3, Y: 3}},
		{"CenteredOnRow", CenteredOnRow(2), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 1}, Vec2{X: 2, Y: 2}},
		{"OffTopLeftBy zero touches edge", OffTopLeftBy(0), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 0, Y: 0}},
		{"OffTopRightBy", OffTopRightBy(2), Vec2{X: 8, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 4, Y: 2}},
		{"OffBottomRightBy zero", OffBottomRightBy(0), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 4, Y: 3}},
		{"Offset", TopLeft.Offset(Vec2{X: 1, Y: 1}), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.just.Resolve(tt.container, tt.object)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJustResolveOutOfBounds(t *testing.T) {
	tests := []struct {
		name      string
		just      Just
		container Vec2
		object    Vec2
	}{
		{"object larger than container", Centered, Vec2{X: 3, Y: 3}, Vec2{X: 4, Y: 1}},
		{"At past the edge", At(Vec2{X: 5, Y: 0}), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 1}},
		{"Offset past the edge", BottomRight.Offset(Vec2{X: 2, Y: 0}), Vec2{X: 6, Y: 5}, Vec2{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.just.Resolve(tt.container, tt.object)
			if err == nil {
				t.Fatal("expected error")
			}
			if _, ok := err.(*JustOutOfBoundsError); !ok {
				t.Errorf("expected *JustOutOfBoundsError, got %T", err)
			}
		})
	}
}

func TestJustResolveUnchecked(t *testing.T) {
	container := Vec2{X: 5, Y: 5}
	object := Vec2{X: 2, Y: 1}

	got, err := AtUnchecked(Vec2{X: 4, Y: 4}).Resolve(container, object)
	if err != nil {
		t.Fatalf("AtUnchecked should skip the final check: %v", err)
	}
	if (got != Vec2{X: 4, Y: 4}) {
		t.Errorf("got %v", got)
	}

	// decorations outside the window, e.g. on a surrounding border
	got, err = TopLeft.OffsetUnchecked(Vec2{X: -1, Y: -1}).Resolve(container, object)
	if err != nil {
		t.Fatalf("OffsetUnchecked should skip the final check: %v", err)
	}
	if (got != Vec2{X: 0, Y: 0}) {
		t.Errorf("got %v", got)
	}

	// the fit check still applies
	if _, err := AtUnchecked(Zero).Resolve(Vec2{X: 3, Y: 3}, Vec2{X: 4, Y: 1}); err == nil {
		t.Error("expected fit error for oversized object")
	}
}
