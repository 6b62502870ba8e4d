package passes

import "time"

// Moderation statuses. Only records still in StatusNew may be edited.
const (
	StatusNew      = "new"
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type PassRecord struct {
	ID          uint      `gorm:"primaryKey"`
	DateAdded   time.Time `gorm:"autoCreateTime"`
	BeautyTitle *string
	Title       string `gorm:"not null"`
	OtherTitles *string
	Connect     *string
	AddTime     *time.Time

	LevelSpring *string `gorm:"size:2"`
	LevelSummer *string `gorm:"size:2"`
	LevelAutumn *string `gorm:"size:2"`
	LevelWinter *string `gorm:"size:2"`

	Status string `gorm:"size:16;not null;default:'new';check:status IN ('new','pending','accepted','rejected')"`

	UserID uint `gorm:"not null;index"`
	User   User

	CoordinateID uint `gorm:"not null"`
	Coordinate   Coordinate

	Images []Image `gorm:"many2many:pass_record_images;constraint:OnDelete:CASCADE"`
}

// PassRecordImage is the join row between a record and one of its
// images, kept as an explicit model so link rows can be replaced
// wholesale during an update.
type PassRecordImage struct {
	ID           uint `gorm:"primaryKey"`
	PassRecordID uint `gorm:"index"`
	ImageID      uint `gorm:"index"`
}
