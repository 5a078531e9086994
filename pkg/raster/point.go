package raster

// Point is an integer pixel coordinate, 0 <= X < W and 0 <= Y < H for a
// bitmap of width W and height H.
type Point struct {
	X, Y int
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func manhattan(a, b Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
