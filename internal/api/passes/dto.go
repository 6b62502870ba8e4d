package passes

import "time"

// ---------- requests

type UserInput struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Fam   string `json:"fam" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Otc   string `json:"otc"`
}

// Coordinate fields are pointers so a legitimate zero (equator,
// prime meridian) still satisfies the required check.
type CoordsInput struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Height    *int     `json:"height" binding:"required,gt=0"`
}

type LevelInput struct {
	Spring *string `json:"spring" binding:"omitempty,max=2"`
	Summer *string `json:"summer" binding:"omitempty,max=2"`
	Autumn *string `json:"autumn" binding:"omitempty,max=2"`
	Winter *string `json:"winter" binding:"omitempty,max=2"`
}

type ImageInput struct {
	Img   string `json:"img" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type SubmitRequest struct {
	BeautyTitle *string      `json:"beauty_title"`
	Title       string       `json:"title" binding:"required"`
	OtherTitles *string      `json:"other_titles"`
	Connect     *string      `json:"connect"`
	AddTime     *time.Time   `json:"add_time"`
	User        UserInput    `json:"user"`
	Coords      CoordsInput  `json:"coords"`
	Level       LevelInput   `json:"level"`
	Images      []ImageInput `json:"images" binding:"omitempty,dive"`
}

// UpdateRequest carries a partial update: every field is optional and
// only non-nil fields are written. Submitter identity is deliberately
// absent — it can never be edited.
type UpdateRequest struct {
	BeautyTitle *string       `json:"beauty_title"`
	Title       *string       `json:"title" binding:"omitempty,min=1"`
	OtherTitles *string       `json:"other_titles"`
	Connect     *string       `json:"connect"`
	AddTime     *time.Time    `json:"add_time"`
	Coords      *CoordsUpdate `json:"coords"`
	Level       *LevelUpdate  `json:"level"`
	Images      *[]ImageInput `json:"images" binding:"omitempty,dive"`
}

type CoordsUpdate struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Height    *int     `json:"height" binding:"omitempty,gt=0"`
}

type LevelUpdate struct {
	Spring *string `json:"spring" binding:"omitempty,max=2"`
	Summer *string `json:"summer" binding:"omitempty,max=2"`
	Autumn *string `json:"autumn" binding:"omitempty,max=2"`
	Winter *string `json:"winter" binding:"omitempty,max=2"`
}

// ---------- responses

type SubmitResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// UpdateResult reports every handled update outcome, including
// not-found and status conflicts, as state 0 or 1 in the body.
type UpdateResult struct {
	State   int    `json:"state"`
	Message string `json:"message"`
}

type UserDTO struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Fam   string `json:"fam"`
	Name  string `json:"name"`
	Otc   string `json:"otc"`
}

type CoordsDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    int     `json:"height"`
}

type LevelDTO struct {
	Spring *string `json:"spring"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Winter *string `json:"winter"`
}

type ImageDTO struct {
	Img   string  `json:"img"`
	Title *string `json:"title"`
}

type PassRecordDTO struct {
	ID          uint       `json:"id"`
	DateAdded   time.Time  `json:"date_added"`
	BeautyTitle *string    `json:"beauty_title"`
	Title       string     `json:"title"`
	OtherTitles *string    `json:"other_titles"`
	Connect     *string    `json:"connect"`
	AddTime     *time.Time `json:"add_time"`
	Status      string     `json:"status"`
	User        UserDTO    `json:"user"`
	Coords      CoordsDTO  `json:"coords"`
	Level       LevelDTO   `json:"level"`
	Images      []ImageDTO `json:"images"`
}

type SummaryDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	DateAdded time.Time `json:"date_added"`
	UserEmail string    `json:"user_email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Height    int       `json:"height"`
}
