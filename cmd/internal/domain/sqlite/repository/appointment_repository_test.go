package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookings/cmd/internal/domain/entity"
	"bookings/cmd/internal/domain/sqlite"
	"bookings/cmd/internal/domain/sqlite/repository"
)

func newTestRepository(t *testing.T) *repository.DefaultAppointmentRepository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "bookings.db"))
	require.NoError(t, err)
	return repository.NewAppointmentRepository(db)
}

func newAppointment(dateMillis int64, slotID uuid.UUID, room int, createdAt int64) *entity.Appointment {
	return &entity.Appointment{
		ID:              uuid.New(),
		TimeSlotID:      slotID,
		AppointmentDate: dateMillis,
		RoomNumber:      room,
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		DateOfBirth:     345254400000,
		CreatedAt:       createdAt,
	}
}

func TestOpenSeedsReferential(t *testing.T) {
	repo := newTestRepository(t)

	slots, err := repo.FindAllTimeSlots()
	require.NoError(t, err)
	require.Len(t, slots, 10)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "13:00", slots[9].EndTime)
}

func TestSaveAndFindByID(t *testing.T) {
	repo := newTestRepository(t)

	appt := newAppointment(1000, uuid.New(), 1, 100)
	require.NoError(t, repo.Save(appt))

	found, err := repo.FindByID(appt.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, appt.Email, found.Email)

	missing, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindAllOrdersNewestFirst(t *testing.T) {
	repo := newTestRepository(t)

	slotA, slotB := uuid.New(), uuid.New()
	require.NoError(t, repo.Save(newAppointment(1000, slotA, 1, 100)))
	require.NoError(t, repo.Save(newAppointment(1000, slotB, 1, 200)))

	appts, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, int64(200), appts[0].CreatedAt)
}

func TestUniqueIndexRejectsDuplicateTriple(t *testing.T) {
	repo := newTestRepository(t)

	slotID := uuid.New()
	require.NoError(t, repo.Save(newAppointment(1000, slotID, 1, 100)))

	// storage-level backstop for the uniqueness invariant
	err := repo.Save(newAppointment(1000, slotID, 1, 200))
	require.Error(t, err)

	// same slot and date in the other room is a different triple
	require.NoError(t, repo.Save(newAppointment(1000, slotID, 2, 300)))
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	appt := newAppointment(1000, uuid.New(), 1, 100)
	require.NoError(t, repo.Save(appt))

	require.NoError(t, repo.Delete(uuid.New()))
	require.NoError(t, repo.Delete(appt.ID))
	require.NoError(t, repo.Delete(appt.ID))

	appts, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, appts)
}
