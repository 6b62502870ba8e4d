package passes

// PassArea is the mountain-area hierarchy reference table. Not served
// by any endpoint yet; kept in the schema for the moderation tooling.
type PassArea struct {
	ID       uint `gorm:"primaryKey"`
	ParentID uint `gorm:"not null"`
	Title    string
}

// ActivityType is the master list of crossing activity types, seeded
// at migration time.
type ActivityType struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:255;not null;unique"`
}
