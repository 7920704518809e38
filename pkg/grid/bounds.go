package grid

// BoundingBox returns the largest X and Y found in coords. Coordinates are
// assumed non-negative, so an empty slice yields (0, 0).
func BoundingBox(coords []Coordinate) (maxX, maxY int) {
	for _, c := range coords {
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return maxX, maxY
}
