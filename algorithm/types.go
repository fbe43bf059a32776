package algorithm

// Location is a geographic coordinate in floating point degrees
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point is a route stop candidate: a bin and its coordinate
type Point struct {
	BinID    int64
	Location Location
}
