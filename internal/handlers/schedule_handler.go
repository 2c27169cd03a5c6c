package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pickupDomain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/httpresp"
	"github.com/foodbridge/pickup-scheduler/internal/middleware"
	ucSchedule "github.com/foodbridge/pickup-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	repo   pickupDomain.Repository
	save   *ucSchedule.SaveSchedule
	remove *ucSchedule.DeleteSchedule
	impact *ucSchedule.CheckScheduleImpact
}

func NewScheduleHandler(
	repo pickupDomain.Repository,
	save *ucSchedule.SaveSchedule,
	remove *ucSchedule.DeleteSchedule,
	impact *ucSchedule.CheckScheduleImpact,
) *ScheduleHandler {
	return &ScheduleHandler{repo: repo, save: save, remove: remove, impact: impact}
}

// ======================================================
// REQUESTS
// ======================================================

type ImpactRequest struct {
	Proposed          ucSchedule.ScheduleInput `json:"proposed" binding:"required"`
	ExcludeScheduleID uint                     `json:"exclude_schedule_id"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}

	schedules, err := h.repo.ListSchedules(c.Request.Context(), locationID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not load schedules.")
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req ucSchedule.ScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.save.Create(c.Request.Context(), locationID, staffID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	scheduleID, ok := paramUint(c, "scheduleId")
	if !ok {
		return
	}
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req ucSchedule.ScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.save.Update(c.Request.Context(), locationID, staffID, scheduleID, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, result)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	scheduleID, ok := paramUint(c, "scheduleId")
	if !ok {
		return
	}
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	result, err := h.remove.Execute(c.Request.Context(), locationID, staffID, scheduleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// Impact previews a create or edit without writing anything.
func (h *ScheduleHandler) Impact(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}

	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	affected, err := h.impact.Change(c.Request.Context(), locationID, req.Proposed, req.ExcludeScheduleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pickups_affected": affected})
}

// DeletionImpact previews removing a schedule.
func (h *ScheduleHandler) DeletionImpact(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	scheduleID, ok := paramUint(c, "scheduleId")
	if !ok {
		return
	}

	affected, err := h.impact.Deletion(c.Request.Context(), locationID, scheduleID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"pickups_affected": affected})
}

// ======================================================
// HELPERS
// ======================================================

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, name+" must be numeric.")
		return 0, false
	}
	return uint(v), true
}
