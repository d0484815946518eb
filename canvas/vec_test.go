package canvas

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 5}
	b := Vec2{X: 2, Y: 1}

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"Add", a.Add(b), Vec2{X: 5, Y: 6}},
		{"Sub", a.Sub(b), Vec2{X: 1, Y: 4}},
		{"Mul", a.Mul(b), Vec2{X: 6, Y: 5}},
		{"Div", a.Div(b), Vec2{X: 1, Y: 5}},
		{"Scale", a.Scale(2), Vec2{X: 6, Y: 10}},
		{"DivScale", a.DivScale(2), Vec2{X: 1, Y: 2}},
		{"AddScalar", a.AddScalar(1), Vec2{X: 4, Y: 6}},
		{"SubScalar", a.SubScalar(1), Vec2{X: 2, Y: 4}},
		{"Neg", a.Neg(), Vec2{X: -3, Y: -5}},
		{"WithX", a.WithX(9), Vec2{X: 9, Y: 5}},
		{"WithY", a.WithY(9), Vec2{X: 3, Y: 9}},
		{"AddX", a.AddX(2), Vec2{X: 5, Y: 5}},
		{"SubY", a.SubY(2), Vec2{X: 3, Y: 3}},
		{"Min", a.Min(b), Vec2{X: 2, Y: 1}},
		{"Max", Vec2{X: 1, Y: 9}.Max(b), Vec2{X: 2, Y: 9}},
		{"Splat", Splat(4), Vec2{X: 4, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2String(t *testing.T) {
	if got := (Vec2{X: 2, Y: -3}).String(); got != "(2, -3)" {
		t.Errorf("got %q", got)
	}
}

func TestCheckBounds(t *testing.T) {
	container := Vec2{X: 10, Y: 6}

	if err := CheckBounds(Vec2{X: 2, Y: 2}, Vec2{X: 8, Y: 4}, container, "fill"); err != nil {
		t.Fatalf("fitting item rejected: %v", err)
	}

	err := CheckBounds(Vec2{X: 2, Y: 2}, Vec2{X: 9, Y: 4}, container, "fill")
	if err == nil {
		t.Fatal("expected error for overflowing item")
	}
	tooBig, ok := err.(*ItemTooBigError)
	if !ok {
		t.Fatalf("expected *ItemTooBigError, got %T", err)
	}
	if tooBig.Name != "fill" || tooBig.Container != container {
		t.Errorf("unexpected error fields: %+v", tooBig)
	}
}
