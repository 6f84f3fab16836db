package world

import "testing"

func TestDirectionOppositeIsInvolution(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", dir, dir.Opposite().Opposite(), dir)
		}
	}
}

func TestDirectionLeftRightCancel(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Left().Right() != dir {
			t.Errorf("%s.Left().Right() = %s, want %s", dir, dir.Left().Right(), dir)
		}
		if dir.Right().Left() != dir {
			t.Errorf("%s.Right().Left() = %s, want %s", dir, dir.Right().Left(), dir)
		}
	}
}

func TestDirectionTwoRightsIsOpposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Right().Right() != dir.Opposite() {
			t.Errorf("%s.Right().Right() = %s, want %s", dir, dir.Right().Right(), dir.Opposite())
		}
	}
}

func TestDirectionDeltaSumsToZero(t *testing.T) {
	rowSum, colSum := 0, 0
	for _, dir := range AllDirections() {
		rowDelta, colDelta := dir.Delta()
		rowSum += rowDelta
		colSum += colDelta
	}
	if rowSum != 0 || colSum != 0 {
		t.Errorf("deltas sum to (%d,%d), want (0,0)", rowSum, colSum)
	}
}

func TestDirectionOppositeDeltaNegates(t *testing.T) {
	for _, dir := range AllDirections() {
		rowDelta, colDelta := dir.Delta()
		oppRow, oppCol := dir.Opposite().Delta()
		if rowDelta != -oppRow || colDelta != -oppCol {
			t.Errorf("%s delta (%d,%d) is not the negation of %s delta (%d,%d)",
				dir, rowDelta, colDelta, dir.Opposite(), oppRow, oppCol)
		}
	}
}

func TestDirectionBitsAreDistinct(t *testing.T) {
	seen := uint8(0)
	for _, dir := range AllDirections() {
		bit := dir.Bit()
		if bit == 0 {
			t.Errorf("%s.Bit() = 0", dir)
		}
		if seen&bit != 0 {
			t.Errorf("%s.Bit() = %d overlaps another direction", dir, bit)
		}
		seen |= bit
	}
	if seen != 0x0f {
		t.Errorf("direction bits cover %04b, want 1111", seen)
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range AllDirections() {
		parsed, ok := ParseDirection(dir.String())
		if !ok || parsed != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), parsed, ok)
		}
	}
	if _, ok := ParseDirection("Up"); ok {
		t.Error("ParseDirection(\"Up\") should fail")
	}
}

func TestInvalidDirection(t *testing.T) {
	bad := Direction(7)
	if bad.IsValid() {
		t.Error("Direction(7).IsValid() = true")
	}
	if bad.String() != "Unknown" {
		t.Errorf("Direction(7).String() = %q, want Unknown", bad.String())
	}
	if bad.Bit() != 0 {
		t.Errorf("Direction(7).Bit() = %d, want 0", bad.Bit())
	}
}
