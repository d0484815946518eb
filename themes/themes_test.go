package themes

import (
	"testing"

	"github.com/lixenwraith/canvas/canvas"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		theme, ok := ByName(name)
		if !ok {
			t.Errorf("ByName(%q) not found", name)
			continue
		}
		if !theme.Base.Valid() || !theme.Text.Valid() {
			t.Errorf("%s: incomplete palette", name)
		}
		if len(theme.Highlights) == 0 {
			t.Errorf("%s: no highlights", name)
		}
	}

	if _, ok := ByName("solarized"); ok {
		t.Error("unknown theme resolved")
	}
}

func TestPaletteValues(t *testing.T) {
	frappe := Frappe()
	if frappe.Base != canvas.RGB(48, 52, 70) {
		t.Errorf("frappe base %v", frappe.Base)
	}
	if frappe.Error != canvas.RGB(231, 130, 132) {
		t.Errorf("frappe error %v", frappe.Error)
	}

	onedark := OneDark()
	if onedark.Text != canvas.RGB(171, 178, 191) {
		t.Errorf("onedark text %v", onedark.Text)
	}
}

func TestAccentOverridesTitleColors(t *testing.T) {
	plain := Mocha()
	accent := plain.Highlights[0]
	themed := plain.Highlighted(accent)

	if plain.TitleBg() != plain.Surface {
		t.Errorf("plain title bg %v", plain.TitleBg())
	}
	if themed.TitleBg() != accent {
		t.Errorf("accented title bg %v", themed.TitleBg())
	}
	if themed.TitleFg() != themed.HighlightFg() {
		t.Errorf("accented title fg %v", themed.TitleFg())
	}

	// colors without an accent role are untouched
	if themed.ButtonBg() != plain.ButtonBg() {
		t.Error("accent leaked into button colors")
	}
}

func TestSelectionColorLayers(t *testing.T) {
	theme := Mocha()

	if theme.ButtonBgHover() != theme.Surface1 {
		t.Errorf("hover bg %v", theme.ButtonBgHover())
	}
	if theme.ButtonBgActivated() != theme.ButtonBgHover() {
		t.Error("activated bg should match hover")
	}
	if theme.ButtonFgActivated() != theme.Text {
		t.Errorf("activated fg %v", theme.ButtonFgActivated())
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := canvas.RGB(10, 20, 30)
	b := canvas.RGB(200, 100, 50)

	if got := Blend(a, b, 0); got != a {
		t.Errorf("t=0 gave %v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("t=1 gave %v", got)
	}
	mid := Blend(a, b, 0.5)
	if mid == a || mid == b {
		t.Errorf("midpoint degenerate: %v", mid)
	}
}

func TestDerive(t *testing.T) {
	theme := Derive(canvas.RGB(30, 30, 46), canvas.RGB(205, 214, 244))

	if theme.Base != canvas.RGB(30, 30, 46) {
		t.Errorf("base %v", theme.Base)
	}
	if !theme.Surface.Valid() || !theme.Surface1.Valid() || !theme.Surface2.Valid() {
		t.Error("surfaces not derived")
	}
	if theme.Surface == theme.Surface1 {
		t.Error("surface steps collapsed")
	}
	if len(theme.Highlights) != 12 {
		t.Errorf("%d highlights", len(theme.Highlights))
	}
	if !theme.Success.Valid() || !theme.Error.Valid() {
		t.Error("status colors missing")
	}
}
