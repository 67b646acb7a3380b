package entity

import "github.com/google/uuid"

// Appointment is a booking of one time slot in one of the two rooms.
// AppointmentDate, DateOfBirth and CreatedAt are epoch milliseconds UTC;
// the slot's own start/end times carry the actual time of day.
type Appointment struct {
	ID              uuid.UUID `gorm:"primaryKey;type:text" json:"id"`
	TimeSlotID      uuid.UUID `gorm:"not null;type:text;uniqueIndex:idx_date_slot_room" json:"time_slot_id"` // References: time_slots(id), not enforced
	AppointmentDate int64     `gorm:"not null;uniqueIndex:idx_date_slot_room" json:"appointment_date"`
	RoomNumber      int       `gorm:"not null;uniqueIndex:idx_date_slot_room" json:"room_number"`
	FirstName       string    `gorm:"not null" json:"first_name"`
	LastName        string    `gorm:"not null" json:"last_name"`
	Email           string    `gorm:"not null" json:"email"`
	DateOfBirth     int64     `gorm:"not null" json:"date_of_birth"`
	CreatedAt       int64     `gorm:"not null" json:"created_at"`
}
