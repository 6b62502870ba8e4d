package passes

import "time"

// Image holds one submitted photo. Rows are immutable once created;
// replacing a record's image set only rewrites the link rows, so an
// unlinked Image may remain behind.
type Image struct {
	ID        uint      `gorm:"primaryKey"`
	DateAdded time.Time `gorm:"autoCreateTime"`
	Img       []byte    `gorm:"not null"`
	Title     *string
}
