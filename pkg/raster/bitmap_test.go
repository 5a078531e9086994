package raster

import "testing"

func TestNewBitmapValidatesDimensions(t *testing.T) {
	if _, err := NewBitmap(make([]byte, 9), 2, 2); err != ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewBitmapValidatesBuffer(t *testing.T) {
	if _, err := NewBitmap(make([]byte, 4), 3, 3); err != ErrInvalidBuffer {
		t.Fatalf("expected ErrInvalidBuffer, got %v", err)
	}
	if _, err := NewBitmap(nil, 3, 3); err != ErrInvalidBuffer {
		t.Fatalf("expected ErrInvalidBuffer for nil buf, got %v", err)
	}
}

func TestBitmapFgNormalizesNonzero(t *testing.T) {
	buf := []byte{0, 1, 7, 0, 255, 0, 0, 0, 0}
	b, err := NewBitmap(buf, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b.Fg(0, 0) {
		t.Fatal("(0,0) should be background")
	}
	if !b.Fg(1, 0) || !b.Fg(2, 0) || !b.Fg(1, 1) {
		t.Fatal("nonzero bytes should normalize to foreground")
	}
}

func TestBitmapFgOutOfBoundsIsBackground(t *testing.T) {
	buf := make([]byte, 9)
	b, _ := NewBitmap(buf, 3, 3)
	if b.Fg(-1, 0) || b.Fg(3, 0) || b.Fg(0, -1) || b.Fg(0, 3) {
		t.Fatal("out-of-bounds reads must be background")
	}
}

func TestNeighbors8ClockwiseFromNorth(t *testing.T) {
	// Only the north neighbor is foreground; confirm it lands at index 0.
	buf := make([]byte, 9)
	buf[1*3+1] = 1 // center, irrelevant to neighbor test
	buf[0*3+1] = 1 // north of center
	b, _ := NewBitmap(buf, 3, 3)
	n := b.neighbors8(1, 1)
	if !n[0] {
		t.Fatal("expected north neighbor at index 0")
	}
	for i := 1; i < 8; i++ {
		if n[i] {
			t.Fatalf("unexpected foreground neighbor at index %d", i)
		}
	}
}

func TestRectForegroundCount(t *testing.T) {
	buf := make([]byte, 25)
	for i := range buf {
		buf[i] = 1
	}
	b, _ := NewBitmap(buf, 5, 5)
	if got := b.RectForegroundCount(1, 1, 2, 2); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}
