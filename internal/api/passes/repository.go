package passes

import (
	"errors"
	"fmt"

	"pereval-api/internal/domain/passes"

	"gorm.io/gorm"
)

// Repository is the data-access layer for pass submissions. It owns no
// connection state beyond the injected handle; every mutating call
// runs inside its own transaction.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Update outcome variants. Each handled failure mode gets its own
// constructor so callers and tests never have to parse messages apart.
func updatedResult() UpdateResult {
	return UpdateResult{State: 1, Message: "Record updated"}
}

func notFoundResult(id uint) UpdateResult {
	return UpdateResult{State: 0, Message: fmt.Sprintf("Record %d not found", id)}
}

func statusConflictResult(status string) UpdateResult {
	return UpdateResult{State: 0, Message: fmt.Sprintf("Record cannot be edited in status %q", status)}
}

func failedResult(err error) UpdateResult {
	return UpdateResult{State: 0, Message: "Update failed: " + err.Error()}
}

// Create persists a submission atomically. The submitter is reused by
// email (identity fields are never refreshed on repeat submissions),
// the coordinate row is always fresh, the record starts in StatusNew
// no matter what the caller sent, and images are decoded, stored and
// linked in input order.
func (r *Repository) Create(req SubmitRequest) (*passes.PassRecord, error) {
	var rec passes.PassRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user passes.User
		err := tx.Where("email = ?", req.User.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = passes.User{
				Email: req.User.Email,
				Phone: req.User.Phone,
				Fam:   req.User.Fam,
				Name:  req.User.Name,
				Otc:   req.User.Otc,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		coord := passes.Coordinate{
			Latitude:  *req.Coords.Latitude,
			Longitude: *req.Coords.Longitude,
			Height:    *req.Coords.Height,
		}
		if err := tx.Create(&coord).Error; err != nil {
			return err
		}

		rec = passes.PassRecord{
			BeautyTitle:  req.BeautyTitle,
			Title:        req.Title,
			OtherTitles:  req.OtherTitles,
			Connect:      req.Connect,
			AddTime:      req.AddTime,
			LevelSpring:  req.Level.Spring,
			LevelSummer:  req.Level.Summer,
			LevelAutumn:  req.Level.Autumn,
			LevelWinter:  req.Level.Winter,
			Status:       passes.StatusNew,
			UserID:       user.ID,
			CoordinateID: coord.ID,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		for _, in := range req.Images {
			title := in.Title
			img := passes.Image{
				Img:   decodeSubmittedPayload(in.Img).Data,
				Title: &title,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			link := passes.PassRecordImage{PassRecordID: rec.ID, ImageID: img.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByID loads one record with its submitter, coordinate and images.
// Returns gorm.ErrRecordNotFound when the id is unknown.
func (r *Repository) GetByID(id uint) (*passes.PassRecord, error) {
	var rec passes.PassRecord
	err := r.db.
		Preload("User").
		Preload("Coordinate").
		Preload("Images").
		First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByEmail returns every record owned by the user with that email,
// coordinate and submitter preloaded. An unknown email is not an
// error; it yields an empty slice.
func (r *Repository) ListByEmail(email string) ([]passes.PassRecord, error) {
	var user passes.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []passes.PassRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recs []passes.PassRecord
	err = r.db.
		Preload("User").
		Preload("Coordinate").
		Where("user_id = ?", user.ID).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Update applies a partial update to a record still in StatusNew.
// Every handled outcome comes back in the result; a storage error
// rolls the transaction back and is reported as a failed result too,
// never as a raw error to the caller.
func (r *Repository) Update(id uint, req UpdateRequest) UpdateResult {
	var result UpdateResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rec passes.PassRecord
		if err := tx.First(&rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result = notFoundResult(id)
				return nil
			}
			return err
		}

		if rec.Status != passes.StatusNew {
			result = statusConflictResult(rec.Status)
			return nil
		}

		fields := map[string]interface{}{}
		if req.BeautyTitle != nil {
			fields["beauty_title"] = *req.BeautyTitle
		}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.OtherTitles != nil {
			fields["other_titles"] = *req.OtherTitles
		}
		if req.Connect != nil {
			fields["connect"] = *req.Connect
		}
		if req.AddTime != nil {
			fields["add_time"] = *req.AddTime
		}
		if req.Level != nil {
			// each season writes its own column only
			if req.Level.Spring != nil {
				fields["level_spring"] = *req.Level.Spring
			}
			if req.Level.Summer != nil {
				fields["level_summer"] = *req.Level.Summer
			}
			if req.Level.Autumn != nil {
				fields["level_autumn"] = *req.Level.Autumn
			}
			if req.Level.Winter != nil {
				fields["level_winter"] = *req.Level.Winter
			}
		}
		if len(fields) > 0 {
			if err := tx.Model(&passes.PassRecord{}).
				Where("id = ?", rec.ID).
				Updates(fields).Error; err != nil {
				return err
			}
		}

		if req.Coords != nil {
			coordFields := map[string]interface{}{}
			if req.Coords.Latitude != nil {
				coordFields["latitude"] = *req.Coords.Latitude
			}
			if req.Coords.Longitude != nil {
				coordFields["longitude"] = *req.Coords.Longitude
			}
			if req.Coords.Height != nil {
				coordFields["height"] = *req.Coords.Height
			}
			if len(coordFields) > 0 {
				if err := tx.Model(&passes.Coordinate{}).
					Where("id = ?", rec.CoordinateID).
					Updates(coordFields).Error; err != nil {
					return err
				}
			}
		}

		// images are replaced wholesale: drop every link row, then
		// store fresh images. Old Image rows stay behind unlinked.
		if req.Images != nil {
			if err := tx.Where("pass_record_id = ?", rec.ID).
				Delete(&passes.PassRecordImage{}).Error; err != nil {
				return err
			}
			for _, in := range *req.Images {
				data, err := decodeStrictPayload(in.Img)
				if err != nil {
					return fmt.Errorf("image %q: %w", in.Title, err)
				}
				title := in.Title
				img := passes.Image{Img: data, Title: &title}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
				link := passes.PassRecordImage{PassRecordID: rec.ID, ImageID: img.ID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}

		result = updatedResult()
		return nil
	})
	if err != nil {
		return failedResult(err)
	}
	return result
}
