package render

import "testing"

func TestTagColorsIdempotent(t *testing.T) {
	colors := NewTagColors()
	first := colors.For("ActivityManager")
	second := colors.For("ActivityManager")
	if first.Render("x") != second.Render("x") {
		t.Error("same tag produced different styles within one run")
	}
	if len(colors.assigned) != 1 {
		t.Errorf("assigned %d entries for one tag", len(colors.assigned))
	}
}

func TestTagColorsDeterministicAcrossRuns(t *testing.T) {
	tags := []string{"ActivityManager", "dalvikvm", "PowerManagerService", "Zygote"}

	a, b := NewTagColors(), NewTagColors()
	for _, tag := range tags {
		a.For(tag)
		b.For(tag)
	}
	for _, tag := range tags {
		if a.assigned[tag] != b.assigned[tag] {
			t.Errorf("tag %q assigned index %d and %d in separate runs", tag, a.assigned[tag], b.assigned[tag])
		}
	}
}

func TestPaletteIndexByteSum(t *testing.T) {
	// "A" is byte 65 and "H" is byte 72; both are 2 mod 7, so they share
	// a color. "B" is 3 mod 7 and must differ.
	if paletteIndex("A") != paletteIndex("H") {
		t.Errorf("paletteIndex(A) = %d, paletteIndex(H) = %d; equal residues must share a color",
			paletteIndex("A"), paletteIndex("H"))
	}
	if paletteIndex("A") == paletteIndex("B") {
		t.Error("paletteIndex(A) == paletteIndex(B); differing residues must differ")
	}

	colors := NewTagColors()
	colors.For("A")
	colors.For("H")
	colors.For("B")
	if colors.assigned["A"] != colors.assigned["H"] {
		t.Error("tags with equal byte-sum residue assigned different colors")
	}
	if colors.assigned["A"] == colors.assigned["B"] {
		t.Error("tags with differing residues assigned the same color")
	}
}

func TestPaletteIndexInRange(t *testing.T) {
	for _, tag := range []string{"", "a", "ActivityManager", "日本語タグ"} {
		idx := paletteIndex(tag)
		if idx < 0 || idx >= len(palette) {
			t.Errorf("paletteIndex(%q) = %d, out of range", tag, idx)
		}
	}
}
