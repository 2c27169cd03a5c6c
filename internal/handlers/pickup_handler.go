package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/httpresp"
	"github.com/foodbridge/pickup-scheduler/internal/middleware"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
)

// ======================================================
// HANDLER
// ======================================================

type PickupHandler struct {
	listByDate *ucPickup.ListPickupsByDate
	reschedule *ucPickup.ReschedulePickup
	pickedUp   *ucPickup.MarkPickedUp
	noShow     *ucPickup.MarkNoShow
}

func NewPickupHandler(
	listByDate *ucPickup.ListPickupsByDate,
	reschedule *ucPickup.ReschedulePickup,
	pickedUp *ucPickup.MarkPickedUp,
	noShow *ucPickup.MarkNoShow,
) *PickupHandler {
	return &PickupHandler{
		listByDate: listByDate,
		reschedule: reschedule,
		pickedUp:   pickedUp,
		noShow:     noShow,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PickupHandler) ListByDate(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	pickups, err := h.listByDate.Execute(c.Request.Context(), locationID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, pickups)
}

func (h *PickupHandler) Reschedule(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	pickupID, ok := paramUint(c, "pickupId")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	err := h.reschedule.Execute(c.Request.Context(), ucPickup.ReschedulePickupInput{
		LocationID: locationID,
		PickupID:   pickupID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *PickupHandler) MarkPickedUp(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	pickupID, ok := paramUint(c, "pickupId")
	if !ok {
		return
	}
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	p, err := h.pickedUp.Execute(c.Request.Context(), locationID, pickupID, staffID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PickupHandler) MarkNoShow(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}
	pickupID, ok := paramUint(c, "pickupId")
	if !ok {
		return
	}
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	p, err := h.noShow.Execute(c.Request.Context(), locationID, pickupID, staffID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, p)
}
