package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/httpresp"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

type LocationHandler struct {
	db *gorm.DB
}

func NewLocationHandler(db *gorm.DB) *LocationHandler {
	return &LocationHandler{db: db}
}

// --------- Requests ---------

type LocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Slug    string `json:"slug" binding:"required"`
	Address string `json:"address"`

	MaxParcelsPerDay    *int `json:"max_parcels_per_day"`
	MaxParcelsPerSlot   *int `json:"max_parcels_per_slot"`
	SlotDurationMinutes int  `json:"slot_duration_minutes"`
}

// --------- Handlers ---------

func (h *LocationHandler) List(c *gin.Context) {
	var locations []models.Location
	if err := h.db.Order("name ASC").Find(&locations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_locations", "Could not load locations.")
		return
	}

	httpresp.List(c, locations)
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("locationId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_location_id", "Location id must be numeric.")
		return
	}

	var loc models.Location
	if err := h.db.First(&loc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "location_not_found", "Location not found.")
		return
	}

	httpresp.OK(c, loc)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Location{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "A location with this slug exists.")
		return
	}

	loc := models.Location{
		Name:                req.Name,
		Slug:                slug,
		Address:             req.Address,
		MaxParcelsPerDay:    req.MaxParcelsPerDay,
		MaxParcelsPerSlot:   req.MaxParcelsPerSlot,
		SlotDurationMinutes: req.SlotDurationMinutes,
	}
	if loc.SlotDurationMinutes <= 0 {
		loc.SlotDurationMinutes = 15
	}

	if err := h.db.Create(&loc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_location", "Could not create location.")
		return
	}

	c.JSON(http.StatusCreated, loc)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("locationId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_location_id", "Location id must be numeric.")
		return
	}

	var loc models.Location
	if err := h.db.First(&loc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "location_not_found", "Location not found.")
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	loc.Name = req.Name
	loc.Address = req.Address
	loc.MaxParcelsPerDay = req.MaxParcelsPerDay
	loc.MaxParcelsPerSlot = req.MaxParcelsPerSlot
	if req.SlotDurationMinutes > 0 {
		loc.SlotDurationMinutes = req.SlotDurationMinutes
	}

	if err := h.db.Save(&loc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_location", "Could not update location.")
		return
	}

	httpresp.OK(c, loc)
}
