package passes

// User identifies a submitter. A row is created on the first submission
// for an email and is never updated by later submissions.
type User struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"not null;uniqueIndex:idx_users_email"`
	Phone string
	Fam   string `gorm:"not null"`
	Name  string `gorm:"not null"`
	Otc   string
}
