package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeSlot is one interval of the fixed daily referential. Start and end
// are times of day ("08:00"), with no date component.
type TimeSlot struct {
	ID        uuid.UUID `gorm:"primaryKey;type:text" json:"id"`
	StartTime string    `gorm:"not null" json:"start_time"`
	EndTime   string    `gorm:"not null" json:"end_time"`
}

// NewTimeSlotReferential builds the fixed referential: ten 30-minute slots
// covering 08:00 to 13:00. It is seeded once on first use of a storage
// backend and never modified afterwards.
func NewTimeSlotReferential() []*TimeSlot {
	const slotCount = 10
	interval := 30 * time.Minute
	start := 8 * time.Hour

	slots := make([]*TimeSlot, slotCount)
	for i := range slots {
		begin := start + time.Duration(i)*interval
		slots[i] = &TimeSlot{
			ID:        uuid.New(),
			StartTime: formatClock(begin),
			EndTime:   formatClock(begin + interval),
		}
	}
	return slots
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
