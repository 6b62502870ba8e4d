package database

import (
	"fmt"
	"log"

	"pereval-api/config"
	"pereval-api/internal/domain/passes"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to postgres, registers the explicit join table and
// runs migrations. Callers own the returned handle; nothing is kept in
// package state.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.SetupJoinTable(&passes.PassRecord{}, "Images", &passes.PassRecordImage{}); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&passes.User{},
		&passes.Coordinate{},
		&passes.PassRecord{},
		&passes.Image{},

		// reference tables
		&passes.PassArea{},
		&passes.ActivityType{},
	); err != nil {
		return nil, err
	}

	seedActivityTypes(db)

	return db, nil
}

// InitDB opens the database from the loaded config and fails the
// process on any error. Intended for main; tests use Open directly.
func InitDB() *gorm.DB {
	db, err := Open(config.DatabaseURL())
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	fmt.Println("✅ Connected and migrated successfully")
	return db
}

// seedActivityTypes ensures the master list of crossing activity types
// exists. Idempotent; missing rows are added, existing ones untouched.
func seedActivityTypes(db *gorm.DB) {
	titles := []string{
		"on foot", "ski", "catamaran", "kayak", "raft",
		"bicycle", "motorcycle", "sail", "horseback",
	}
	for _, title := range titles {
		var cnt int64
		db.Model(&passes.ActivityType{}).Where("title = ?", title).Count(&cnt)
		if cnt == 0 {
			if err := db.Create(&passes.ActivityType{Title: title}).Error; err != nil {
				log.Printf("seeding activity type %q failed: %v", title, err)
			}
		}
	}
}
