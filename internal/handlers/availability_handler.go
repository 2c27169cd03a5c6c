package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/foodbridge/pickup-scheduler/internal/clock"
	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	schedDomain "github.com/foodbridge/pickup-scheduler/internal/domain/schedule"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/httpresp"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/validators"
)

// ======================================================
// HANDLER (public, no auth)
// ======================================================

type AvailabilityHandler struct {
	repo  domain.Repository
	slots *ucPickup.GetAvailableSlots
}

func NewAvailabilityHandler(repo domain.Repository, slots *ucPickup.GetAvailableSlots) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, slots: slots}
}

// ======================================================
// HANDLERS
// ======================================================

// Check answers "is this location open on this date (at this time)?",
// with a reason when it is not.
func (h *AvailabilityHandler) Check(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if !validators.IsDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Query parameter date must be YYYY-MM-DD.")
		return
	}
	date, err := clock.ParseLocalDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Query parameter date must be YYYY-MM-DD.")
		return
	}

	schedules, err := h.repo.ListSchedules(c.Request.Context(), locationID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not load schedules.")
		return
	}

	if timeStr := c.Query("time"); timeStr != "" {
		if !validators.IsClockTime(timeStr) {
			httperr.BadRequest(c, "invalid_time", "Query parameter time must be HH:mm.")
			return
		}
		httpresp.OK(c, schedDomain.IsTimeAvailable(date, timeStr, schedules))
		return
	}

	httpresp.OK(c, schedDomain.IsDateAvailable(date, schedules))
}

// Slots lists the bookable slot start times for a date.
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), locationID, c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}
