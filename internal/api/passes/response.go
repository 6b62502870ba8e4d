package passes

import "pereval-api/internal/domain/passes"

func toUserDTO(u passes.User) UserDTO {
	return UserDTO{
		Email: u.Email,
		Phone: u.Phone,
		Fam:   u.Fam,
		Name:  u.Name,
		Otc:   u.Otc,
	}
}

func toCoordsDTO(c passes.Coordinate) CoordsDTO {
	return CoordsDTO{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Height:    c.Height,
	}
}

func toPassRecordDTO(rec *passes.PassRecord) PassRecordDTO {
	images := make([]ImageDTO, 0, len(rec.Images))
	for _, img := range rec.Images {
		// best effort: an image that cannot be re-encoded still gets
		// an entry, with an empty payload
		images = append(images, ImageDTO{
			Img:   encodePayload(img.Img),
			Title: img.Title,
		})
	}

	return PassRecordDTO{
		ID:          rec.ID,
		DateAdded:   rec.DateAdded,
		BeautyTitle: rec.BeautyTitle,
		Title:       rec.Title,
		OtherTitles: rec.OtherTitles,
		Connect:     rec.Connect,
		AddTime:     rec.AddTime,
		Status:      rec.Status,
		User:        toUserDTO(rec.User),
		Coords:      toCoordsDTO(rec.Coordinate),
		Level: LevelDTO{
			Spring: rec.LevelSpring,
			Summer: rec.LevelSummer,
			Autumn: rec.LevelAutumn,
			Winter: rec.LevelWinter,
		},
		Images: images,
	}
}

func toSummaryDTO(rec passes.PassRecord) SummaryDTO {
	return SummaryDTO{
		ID:        rec.ID,
		Title:     rec.Title,
		Status:    rec.Status,
		DateAdded: rec.DateAdded,
		UserEmail: rec.User.Email,
		Latitude:  rec.Coordinate.Latitude,
		Longitude: rec.Coordinate.Longitude,
		Height:    rec.Coordinate.Height,
	}
}
