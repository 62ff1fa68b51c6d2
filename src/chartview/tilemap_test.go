package chartview

import "testing"

func TestTileLayoutCoversAllStatesOnce(t *testing.T) {
	seen := map[string]bool{}
	cells := map[[2]int]string{}
	for _, cell := range tileLayout {
		if seen[cell.code] {
			t.Fatalf("duplicate tile for %s", cell.code)
		}
		seen[cell.code] = true
		pos := [2]int{cell.col, cell.row}
		if other, taken := cells[pos]; taken {
			t.Fatalf("tiles %s and %s share cell %v", other, cell.code, pos)
		}
		cells[pos] = cell.code
		if cell.col < 0 || cell.col >= tileGridCols || cell.row < 0 || cell.row >= tileGridRows {
			t.Fatalf("tile %s out of grid at %v", cell.code, pos)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 tiles, got %d", len(seen))
	}
}

func TestRegionAtHitsTileCenters(t *testing.T) {
	const w, h = 520, 420
	size, ox, oy := tileGeometry(w, h)
	for _, cell := range tileLayout {
		r := tileRect(cell, size, ox, oy)
		cx := (r.Min.X + r.Max.X) / 2
		cy := (r.Min.Y + r.Max.Y) / 2
		if got := regionAt(cx, cy, w, h); got != cell.code {
			t.Fatalf("regionAt center of %s = %q", cell.code, got)
		}
	}
}

func TestRegionAtMissesGapsAndEdges(t *testing.T) {
	const w, h = 520, 420
	if got := regionAt(0, 0, w, h); got != "" {
		t.Fatalf("title strip should not hit a region, got %q", got)
	}
	if got := regionAt(w-1, h-1, w, h); got != "" {
		t.Fatalf("bottom-right corner should be empty, got %q", got)
	}
}

func TestLerpColorClamps(t *testing.T) {
	lo, hi := schemeColors("oranges")
	if c := lerpColor(lo, hi, -1); c != lo {
		t.Fatalf("below-domain values should clamp to the light end, got %v", c)
	}
	if c := lerpColor(lo, hi, 2); c != hi {
		t.Fatalf("above-domain values should clamp to the dark end, got %v", c)
	}
}

func TestSchemeColorsFallback(t *testing.T) {
	lo, hi := schemeColors("no-such-scheme")
	wantLo, wantHi := schemeColors("oranges")
	if lo != wantLo || hi != wantHi {
		t.Fatalf("unknown scheme should fall back to oranges")
	}
}
