package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/foodbridge/pickup-scheduler/internal/domain/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/httpresp"
	"github.com/foodbridge/pickup-scheduler/internal/models"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
	"github.com/foodbridge/pickup-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type HouseholdHandler struct {
	db       *gorm.DB
	repo     domain.Repository
	updateUC *ucPickup.UpdateHouseholdSchedule
}

func NewHouseholdHandler(
	db *gorm.DB,
	repo domain.Repository,
	updateUC *ucPickup.UpdateHouseholdSchedule,
) *HouseholdHandler {
	return &HouseholdHandler{db: db, repo: repo, updateUC: updateUC}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateHouseholdRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PickupWindowRequest struct {
	Earliest string `json:"earliest" binding:"required"`
	Latest   string `json:"latest" binding:"required"`
}

type UpdatePickupsRequest struct {
	LocationID uint                  `json:"location_id" binding:"required"`
	Windows    []PickupWindowRequest `json:"windows"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *HouseholdHandler) Create(c *gin.Context) {
	var req CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not appear to exist.")
		return
	}

	household := models.Household{
		PublicID: uuid.New(),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    email,
	}

	if err := h.db.Create(&household).Error; err != nil {
		httperr.Internal(c, "failed_to_create_household", "Could not create household.")
		return
	}

	c.JSON(http.StatusCreated, household)
}

func (h *HouseholdHandler) ListPickups(c *gin.Context) {
	household, ok := h.householdFromParam(c)
	if !ok {
		return
	}

	pickups, err := h.repo.ListHouseholdPickups(c.Request.Context(), household.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_pickups", "Could not load pickups.")
		return
	}

	httpresp.List(c, pickups)
}

// UpdatePickups reconciles the household's submitted desired windows
// against what is stored.
func (h *HouseholdHandler) UpdatePickups(c *gin.Context) {
	household, ok := h.householdFromParam(c)
	if !ok {
		return
	}

	var req UpdatePickupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucPickup.UpdateHouseholdScheduleInput{
		HouseholdID: household.ID,
		LocationID:  req.LocationID,
	}
	for _, w := range req.Windows {
		in.Windows = append(in.Windows, ucPickup.PickupWindowInput{
			Earliest: w.Earliest,
			Latest:   w.Latest,
		})
	}

	result, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// HELPERS
// ======================================================

func (h *HouseholdHandler) householdFromParam(c *gin.Context) (*models.Household, bool) {
	publicID, err := uuid.Parse(c.Param("householdId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_household_id", "Household id must be a UUID.")
		return nil, false
	}

	household, err := h.repo.GetHouseholdByPublicID(c.Request.Context(), publicID)
	if err != nil {
		httperr.NotFound(c, "household_not_found", "Household not found.")
		return nil, false
	}

	return household, true
}
