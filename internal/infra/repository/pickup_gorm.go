package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

type PickupGormRepository struct {
	db *gorm.DB
}

func NewPickupGormRepository(db *gorm.DB) *PickupGormRepository {
	return &PickupGormRepository{db: db}
}

// --------------------------------------------------
// Location
// --------------------------------------------------

func (r *PickupGormRepository) GetLocation(
	ctx context.Context,
	id uint,
) (*models.Location, error) {

	var loc models.Location
	if err := r.db.WithContext(ctx).First(&loc, id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *PickupGormRepository) SetOutsideHoursCount(
	ctx context.Context,
	locationID uint,
	count int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("id = ?", locationID).
		Update("outside_hours_count", count).Error
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *PickupGormRepository) ListSchedules(
	ctx context.Context,
	locationID uint,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Days").
		Where("location_id = ?", locationID).
		Order("start_date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *PickupGormRepository) GetSchedule(
	ctx context.Context,
	locationID uint,
	scheduleID uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Days").
		Where("id = ? AND location_id = ?", scheduleID, locationID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PickupGormRepository) CreateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ReplaceSchedule swaps the full day set along with the schedule row;
// read-modify-write of days happens inside the caller's transaction.
func (r *PickupGormRepository) ReplaceSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {

	tx := r.db.WithContext(ctx)

	if err := tx.
		Where("schedule_id = ?", s.ID).
		Delete(&models.ScheduleDay{}).Error; err != nil {
		return err
	}

	return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *PickupGormRepository) DeleteSchedule(
	ctx context.Context,
	locationID uint,
	scheduleID uint,
) error {

	tx := r.db.WithContext(ctx)

	if err := tx.
		Where("schedule_id = ?", scheduleID).
		Delete(&models.ScheduleDay{}).Error; err != nil {
		return err
	}

	return tx.
		Where("id = ? AND location_id = ?", scheduleID, locationID).
		Delete(&models.Schedule{}).Error
}

// --------------------------------------------------
// Household
// --------------------------------------------------

func (r *PickupGormRepository) GetHousehold(
	ctx context.Context,
	id uint,
) (*models.Household, error) {

	var h models.Household
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *PickupGormRepository) GetHouseholdByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Household, error) {

	var h models.Household
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// --------------------------------------------------
// Pickup (read)
// --------------------------------------------------

func (r *PickupGormRepository) GetPickup(
	ctx context.Context,
	locationID uint,
	pickupID uint,
) (*models.Pickup, error) {

	var p models.Pickup
	if err := r.db.WithContext(ctx).
		Where("id = ? AND location_id = ?", pickupID, locationID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PickupGormRepository) ListHouseholdPickups(
	ctx context.Context,
	householdID uint,
) ([]models.Pickup, error) {

	var pickups []models.Pickup
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("earliest ASC").
		Find(&pickups).Error; err != nil {
		return nil, err
	}
	return pickups, nil
}

func (r *PickupGormRepository) ListFutureActivePickups(
	ctx context.Context,
	locationID uint,
	after time.Time,
) ([]models.Pickup, error) {

	var pickups []models.Pickup
	if err := r.db.WithContext(ctx).
		Where(
			"location_id = ? AND earliest > ? AND is_picked_up = false",
			locationID, after,
		).
		Order("earliest ASC").
		Find(&pickups).Error; err != nil {
		return nil, err
	}
	return pickups, nil
}

func (r *PickupGormRepository) ListPickupsForPeriod(
	ctx context.Context,
	locationID uint,
	start time.Time,
	end time.Time,
) ([]models.Pickup, error) {

	var pickups []models.Pickup
	if err := r.db.WithContext(ctx).
		Preload("Household").
		Where(
			"location_id = ? AND earliest >= ? AND earliest <= ?",
			locationID, start, end,
		).
		Order("earliest ASC").
		Find(&pickups).Error; err != nil {
		return nil, err
	}
	return pickups, nil
}

// --------------------------------------------------
// Pickup (write)
// --------------------------------------------------

// InsertPickups is the upsert half of reconciliation: a concurrent insert
// of the same identity tuple is ignored instead of failing the batch.
func (r *PickupGormRepository) InsertPickups(
	ctx context.Context,
	rows []models.Pickup,
) error {

	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "household_id"},
				{Name: "location_id"},
				{Name: "earliest"},
				{Name: "latest"},
			},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *PickupGormRepository) DeletePickups(
	ctx context.Context,
	ids []uint,
) error {

	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&models.Pickup{}).Error
}

func (r *PickupGormRepository) UpdatePickup(
	ctx context.Context,
	p *models.Pickup,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Capacity
// --------------------------------------------------

// Both counts lock the matched rows so two concurrent reconciliations
// cannot each observe spare capacity and both commit.

func (r *PickupGormRepository) CountPickupsForDay(
	ctx context.Context,
	locationID uint,
	dayStart time.Time,
	dayEnd time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Pickup{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"location_id = ? AND earliest >= ? AND earliest <= ?",
			locationID, dayStart, dayEnd,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PickupGormRepository) CountPickupsForSlot(
	ctx context.Context,
	locationID uint,
	earliest time.Time,
	latest time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Pickup{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"location_id = ? AND earliest < ? AND latest > ?",
			locationID, latest, earliest,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *PickupGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PickupGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*PickupGormRepository)(nil)
