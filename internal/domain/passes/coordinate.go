package passes

// Coordinate is the location of a single pass record. A fresh row is
// created per submission, even for numerically identical triples.
type Coordinate struct {
	ID        uint    `gorm:"primaryKey"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Height    int     `gorm:"not null"`
}
