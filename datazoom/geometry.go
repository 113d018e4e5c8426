package datazoom

// Point is a position in the control's layout space. Y grows away from the
// baseline the control's Bottom is measured from.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{x, y} }

// Rect is an axis aligned rectangle, Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

// RectFromMinMax builds a rectangle from its edges without reordering them.
func RectFromMinMax(xMin, yMin, xMax, yMax float64) Rect {
	return Rect{Min: Point{xMin, yMin}, Max: Point{xMax, yMax}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Inverted reports whether either pair of edges is crossed.
func (r Rect) Inverted() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Contains reports whether p lies in r. An inverted rectangle is empty.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}
