package pickup

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/foodbridge/pickup-scheduler/internal/models"
)

type Repository interface {
	// -------- Location --------
	GetLocation(
		ctx context.Context,
		id uint,
	) (*models.Location, error)

	SetOutsideHoursCount(
		ctx context.Context,
		locationID uint,
		count int,
	) error

	// -------- Schedule --------
	ListSchedules(
		ctx context.Context,
		locationID uint,
	) ([]models.Schedule, error)

	GetSchedule(
		ctx context.Context,
		locationID uint,
		scheduleID uint,
	) (*models.Schedule, error)

	CreateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	ReplaceSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	DeleteSchedule(
		ctx context.Context,
		locationID uint,
		scheduleID uint,
	) error

	// -------- Household --------
	GetHousehold(
		ctx context.Context,
		id uint,
	) (*models.Household, error)

	GetHouseholdByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Household, error)

	// -------- Pickup (read) --------
	GetPickup(
		ctx context.Context,
		locationID uint,
		pickupID uint,
	) (*models.Pickup, error)

	ListHouseholdPickups(
		ctx context.Context,
		householdID uint,
	) ([]models.Pickup, error)

	// Future (earliest > after), not picked up.
	ListFutureActivePickups(
		ctx context.Context,
		locationID uint,
		after time.Time,
	) ([]models.Pickup, error)

	ListPickupsForPeriod(
		ctx context.Context,
		locationID uint,
		start time.Time,
		end time.Time,
	) ([]models.Pickup, error)

	// -------- Pickup (write) --------
	// InsertPickups is conflict-tolerant on the identity key
	// (household, location, earliest, latest).
	InsertPickups(
		ctx context.Context,
		rows []models.Pickup,
	) error

	DeletePickups(
		ctx context.Context,
		ids []uint,
	) error

	UpdatePickup(
		ctx context.Context,
		p *models.Pickup,
	) error

	// -------- Capacity (row-locked reads) --------
	CountPickupsForDay(
		ctx context.Context,
		locationID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) (int64, error)

	CountPickupsForSlot(
		ctx context.Context,
		locationID uint,
		earliest time.Time,
		latest time.Time,
	) (int64, error)

	// -------- Transaction --------
	// InTx runs fn against a repository bound to one transaction;
	// an error rolls everything back.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
