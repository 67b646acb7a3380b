package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"bookings/cmd/internal/domain/entity"
	"bookings/cmd/internal/utils"
	"bookings/cmd/internal/utils/apierror"
)

type AppointmentRepository interface {
	FindAll() ([]*entity.Appointment, error)
	FindByID(id uuid.UUID) (*entity.Appointment, error)
	FindByDateAndRoom(dateMillis int64, roomNumber int) ([]*entity.Appointment, error)
	FindByDateSlotAndRoom(dateMillis int64, slotID uuid.UUID, roomNumber int) (*entity.Appointment, error)
	Save(appointment *entity.Appointment) error
	Delete(id uuid.UUID) error
	FindAllTimeSlots() ([]*entity.TimeSlot, error)
}

type AppointmentRequest struct {
	TimeSlotID      string `json:"time_slot_id" validate:"required,uuid"`
	RoomNumber      int    `json:"room_number" validate:"required,oneof=1 2"`
	AppointmentDate string `json:"appointment_date" validate:"required,iso8601"`
	FirstName       string `json:"first_name" validate:"required,max=80"`
	LastName        string `json:"last_name" validate:"required,max=80"`
	Email           string `json:"email" validate:"required,email"`
	DateOfBirth     string `json:"date_of_birth" validate:"required,iso8601"`
}

type TimeSlotResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AppointmentResponse struct {
	ID              string            `json:"id"`
	TimeSlotID      string            `json:"time_slot_id"`
	TimeSlot        *TimeSlotResponse `json:"time_slot,omitempty"`
	RoomNumber      int               `json:"room_number"`
	AppointmentDate string            `json:"appointment_date"`
	FirstName       string            `json:"first_name"`
	LastName        string            `json:"last_name"`
	Email           string            `json:"email"`
	DateOfBirth     string            `json:"date_of_birth"`
	CreatedAt       string            `json:"created_at"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate}
}

// GetAppointments returns every appointment, newest first, each joined with
// its referenced time slot. A dangling slot reference leaves the slot unset
// rather than failing: slots are immutable, so this only happens when the
// referential was recreated underneath existing bookings.
func (a *DefaultAppointmentService) GetAppointments() ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	slotsByID, apierr := a.timeSlotIndex()
	if apierr != nil {
		return nil, apierr
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt, slotsByID[appt.TimeSlotID])
	}
	return response, nil
}

func (a *DefaultAppointmentService) GetTimeSlots() ([]*TimeSlotResponse, apierror.ErrorResponse) {
	slots, err := a.AppointmentRepo.FindAllTimeSlots()
	if err != nil {
		log.Errorf("failed to fetch time slots: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*TimeSlotResponse, len(slots))
	for i, slot := range slots {
		response[i] = toTimeSlotResponse(slot)
	}
	return response, nil
}

// GetAvailableTimeSlots returns the slots not yet booked for the given date
// and room, in referential order. The date must be a strictly future
// calendar day (UTC, date-only comparison; today does not qualify) and the
// room must be 1 or 2.
func (a *DefaultAppointmentService) GetAvailableTimeSlots(dateMillis int64, roomNumber int) ([]*TimeSlotResponse, apierror.ErrorResponse) {
	if dateMillis <= 0 || utils.StartOfDayMillis(dateMillis) <= utils.StartOfDayMillis(utils.NowUTC()) {
		return nil, apierror.InvalidDateError
	}
	if roomNumber < 1 || roomNumber > 2 {
		return nil, apierror.InvalidRoomError
	}

	slots, err := a.AppointmentRepo.FindAllTimeSlots()
	if err != nil {
		log.Errorf("failed to fetch time slots: %v", err)
		return nil, apierror.InternalServerError
	}

	booked, err := a.AppointmentRepo.FindByDateAndRoom(dateMillis, roomNumber)
	if err != nil {
		log.Errorf("failed to fetch appointments for date %d room %d: %v", dateMillis, roomNumber, err)
		return nil, apierror.InternalServerError
	}

	taken := make(map[uuid.UUID]struct{}, len(booked))
	for _, appt := range booked {
		taken[appt.TimeSlotID] = struct{}{}
	}

	available := make([]*TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot.ID]; !ok {
			available = append(available, toTimeSlotResponse(slot))
		}
	}
	return available, nil
}

func (a *DefaultAppointmentService) GetAppointment(id uuid.UUID) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NotFoundError
	}

	slotsByID, apierr := a.timeSlotIndex()
	if apierr != nil {
		return nil, apierr
	}
	return toAppointmentResponse(appt, slotsByID[appt.TimeSlotID]), nil
}

// CreateAppointment books a slot. At most one appointment may exist per
// exact (appointment_date, time_slot_id, room_number) triple; a second
// booking of the same triple is rejected without writing anything.
func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	slotID, err := uuid.Parse(req.TimeSlotID)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	date, err := utils.FromEpoch(req.AppointmentDate)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	dateOfBirth, err := utils.FromEpoch(req.DateOfBirth)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	existing, err := a.AppointmentRepo.FindByDateSlotAndRoom(date, slotID, req.RoomNumber)
	if err != nil {
		log.Errorf("failed to check slot availability: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.SlotUnavailableError
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		TimeSlotID:      slotID,
		AppointmentDate: date,
		RoomNumber:      req.RoomNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		DateOfBirth:     dateOfBirth,
		CreatedAt:       utils.NowUTC(),
	}

	if err := a.AppointmentRepo.Save(appointment); err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appointment, nil), nil
}

// DeleteAppointment removes the record with the given id. Deleting an id
// that does not exist is a silent success.
func (a *DefaultAppointmentService) DeleteAppointment(id uuid.UUID) apierror.ErrorResponse {
	if err := a.AppointmentRepo.Delete(id); err != nil {
		log.Errorf("failed to delete appointment %s: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (a *DefaultAppointmentService) timeSlotIndex() (map[uuid.UUID]*entity.TimeSlot, apierror.ErrorResponse) {
	slots, err := a.AppointmentRepo.FindAllTimeSlots()
	if err != nil {
		log.Errorf("failed to fetch time slots: %v", err)
		return nil, apierror.InternalServerError
	}

	byID := make(map[uuid.UUID]*entity.TimeSlot, len(slots))
	for _, slot := range slots {
		byID[slot.ID] = slot
	}
	return byID, nil
}

func toTimeSlotResponse(slot *entity.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        slot.ID.String(),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
}

func toAppointmentResponse(appt *entity.Appointment, slot *entity.TimeSlot) *AppointmentResponse {
	response := &AppointmentResponse{
		ID:              appt.ID.String(),
		TimeSlotID:      appt.TimeSlotID.String(),
		RoomNumber:      appt.RoomNumber,
		AppointmentDate: utils.FormatEpoch(appt.AppointmentDate),
		FirstName:       appt.FirstName,
		LastName:        appt.LastName,
		Email:           appt.Email,
		DateOfBirth:     utils.FormatEpoch(appt.DateOfBirth),
		CreatedAt:       utils.FormatEpoch(appt.CreatedAt),
	}
	if slot != nil {
		response.TimeSlot = toTimeSlotResponse(slot)
	}
	return response
}
