package sqlite

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookings/cmd/internal/domain/entity"
)

// Open initializes the SQLite database, migrates the schema and seeds the
// time-slot referential when the table is empty.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.TimeSlot{}, &entity.Appointment{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := seedTimeSlots(db); err != nil {
		return nil, err
	}

	return db, nil
}

func seedTimeSlots(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.TimeSlot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slots := entity.NewTimeSlotReferential()
	return db.Create(&slots).Error
}
