package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"bookings/cmd/internal/domain/entity"
)

const (
	appointmentsFilename = "appointments.json"
	timeSlotsFilename    = "timeslots.json"
)

// Repository persists both collections as whole-file JSON snapshots under a
// data directory. Every read loads the full file, every write rewrites it.
// One mutex per file keeps concurrent handlers from interleaving a read
// with a partial write; it does not serialize the service's check-then-save
// sequence, which stays best-effort.
type Repository struct {
	appointmentsPath string
	timeSlotsPath    string

	apptMu sync.Mutex
	slotMu sync.Mutex
}

// NewRepository prepares the data directory and seeds the time-slot
// referential if it has never been written.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	r := &Repository{
		appointmentsPath: filepath.Join(dir, appointmentsFilename),
		timeSlotsPath:    filepath.Join(dir, timeSlotsFilename),
	}

	if _, err := os.Stat(r.timeSlotsPath); errors.Is(err, os.ErrNotExist) {
		if err := writeRecords(r.timeSlotsPath, entity.NewTimeSlotReferential()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Repository) FindAll() ([]*entity.Appointment, error) {
	r.apptMu.Lock()
	defer r.apptMu.Unlock()
	return r.readAppointments()
}

func (r *Repository) FindByID(id uuid.UUID) (*entity.Appointment, error) {
	r.apptMu.Lock()
	defer r.apptMu.Unlock()

	appts, err := r.readAppointments()
	if err != nil {
		return nil, err
	}
	for _, appt := range appts {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, nil
}

func (r *Repository) FindByDateAndRoom(dateMillis int64, roomNumber int) ([]*entity.Appointment, error) {
	r.apptMu.Lock()
	defer r.apptMu.Unlock()

	appts, err := r.readAppointments()
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.Appointment, 0)
	for _, appt := range appts {
		if appt.AppointmentDate == dateMillis && appt.RoomNumber == roomNumber {
			matches = append(matches, appt)
		}
	}
	return matches, nil
}

func (r *Repository) FindByDateSlotAndRoom(dateMillis int64, slotID uuid.UUID, roomNumber int) (*entity.Appointment, error) {
	r.apptMu.Lock()
	defer r.apptMu.Unlock()

	appts, err := r.readAppointments()
	if err != nil {
		return nil, err
	}
	for _, appt := range appts {
		if appt.AppointmentDate == dateMillis && appt.TimeSlotID == slotID && appt.RoomNumber == roomNumber {
			return appt, nil
		}
	}
	return nil, nil
}

func (r *Repository) Save(appointment *entity.Appointment) error {
	r.apptMu.Lock()
	defer r.apptMu.Unlock()

	appts, err := r.readAppointments()
	if err != nil {
		return err
	}
	appts = append(appts, appointment)
	return writeRecords(r.appointmentsPath, appts)
}

// Delete rewrites the snapshot without the matching record. A missing id
// is a no-op, not an error.
func (r *Repository) Delete(id uuid.UUID) error {
	r.apptMu.Lock()
	defer r.apptMu.Unlock()

	appts, err := r.readAppointments()
	if err != nil {
		return err
	}

	remaining := make([]*entity.Appointment, 0, len(appts))
	for _, appt := range appts {
		if appt.ID != id {
			remaining = append(remaining, appt)
		}
	}
	return writeRecords(r.appointmentsPath, remaining)
}

// FindAllTimeSlots returns the referential in its stored (creation) order,
// which is ascending start time.
func (r *Repository) FindAllTimeSlots() ([]*entity.TimeSlot, error) {
	r.slotMu.Lock()
	defer r.slotMu.Unlock()
	return readRecords[entity.TimeSlot](r.timeSlotsPath)
}

func (r *Repository) readAppointments() ([]*entity.Appointment, error) {
	appts, err := readRecords[entity.Appointment](r.appointmentsPath)
	if err != nil {
		return nil, err
	}
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].CreatedAt > appts[j].CreatedAt
	})
	return appts, nil
}

func readRecords[T any](path string) ([]*T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []*T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []*T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func writeRecords[T any](path string, records []*T) error {
	if records == nil {
		records = []*T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
