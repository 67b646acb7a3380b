package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookings/cmd/internal/domain/entity"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindAll() ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.Order("created_at desc").Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) FindByID(id uuid.UUID) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (a *DefaultAppointmentRepository) FindByDateAndRoom(dateMillis int64, roomNumber int) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.
		Where("appointment_date = ?", dateMillis).
		Where("room_number = ?", roomNumber).
		Order("created_at desc").
		Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) FindByDateSlotAndRoom(dateMillis int64, slotID uuid.UUID, roomNumber int) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.
		Where("appointment_date = ?", dateMillis).
		Where("time_slot_id = ?", slotID).
		Where("room_number = ?", roomNumber).
		First(&appt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	return a.db.Create(appointment).Error
}

// Delete removes the matching row; deleting an unknown id is a no-op.
func (a *DefaultAppointmentRepository) Delete(id uuid.UUID) error {
	return a.db.Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (a *DefaultAppointmentRepository) FindAllTimeSlots() ([]*entity.TimeSlot, error) {
	var slots []*entity.TimeSlot
	err := a.db.Order("start_time asc").Find(&slots).Error
	return slots, err
}
