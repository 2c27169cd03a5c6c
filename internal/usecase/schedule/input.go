package schedule

import (
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleDayInput struct {
	Weekday     string `json:"weekday"`
	IsOpen      bool   `json:"is_open"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type ScheduleInput struct {
	Name      string             `json:"name"`
	StartDate string             `json:"start_date"` // "2006-01-02", local
	EndDate   string             `json:"end_date"`
	Days      []ScheduleDayInput `json:"days"`
}

// ToModel parses and validates the input into a schedule row. id is zero
// for a new schedule.
func (in ScheduleInput) ToModel(locationID, id uint) (*models.Schedule, error) {
	start, err := clock.ParseLocalDate(in.StartDate)
	if err != nil {
		return nil, httperr.ErrField("start_date", "invalid_date", "Start date must be YYYY-MM-DD.")
	}
	end, err := clock.ParseLocalDate(in.EndDate)
	if err != nil {
		return nil, httperr.ErrField("end_date", "invalid_date", "End date must be YYYY-MM-DD.")
	}

	s := &models.Schedule{
		ID:         id,
		LocationID: locationID,
		Name:       in.Name,
		StartDate:  start.Time(),
		EndDate:    end.Time(),
	}
	for _, d := range in.Days {
		s.Days = append(s.Days, models.ScheduleDay{
			ScheduleID:  id,
			Weekday:     d.Weekday,
			IsOpen:      d.IsOpen,
			OpeningTime: d.OpeningTime,
			ClosingTime: d.ClosingTime,
		})
	}

	if err := domain.ValidateSchedule(s); err != nil {
		return nil, err
	}
	return s, nil
}
