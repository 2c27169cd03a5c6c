package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/foodbridge/pickup-scheduler/internal/audit"
	"github.com/foodbridge/pickup-scheduler/internal/clock"
	"github.com/foodbridge/pickup-scheduler/internal/config"
	"github.com/foodbridge/pickup-scheduler/internal/handlers"
	infraCache "github.com/foodbridge/pickup-scheduler/internal/infra/cache"
	infraRepo "github.com/foodbridge/pickup-scheduler/internal/infra/repository"
	"github.com/foodbridge/pickup-scheduler/internal/middleware"
	ucPickup "github.com/foodbridge/pickup-scheduler/internal/usecase/pickup"
	ucSchedule "github.com/foodbridge/pickup-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewPickupGormRepository(db)
	clk := clock.System{}

	slotCache := infraCache.NewSlotCacheRedis(rdb, 5*time.Minute)

	// a nil *SlotCacheRedis must stay a nil interface in the use cases
	var availCache ucPickup.AvailabilityCache
	var readCache ucPickup.SlotCache
	if slotCache != nil {
		availCache = slotCache
		readCache = slotCache
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	recomputeUC := ucPickup.NewRecomputeOutsideHours(repo, clk)

	updateHouseholdUC := ucPickup.NewUpdateHouseholdSchedule(
		repo, clk, availCache, recomputeUC, auditDispatcher,
	)
	slotsUC := ucPickup.NewGetAvailableSlots(repo, clk, readCache)
	listPickupsUC := ucPickup.NewListPickupsByDate(repo)
	rescheduleUC := ucPickup.NewReschedulePickup(
		repo, clk, availCache, recomputeUC, auditDispatcher,
	)
	pickedUpUC := ucPickup.NewMarkPickedUp(repo, auditDispatcher)
	noShowUC := ucPickup.NewMarkNoShow(repo, clk, auditDispatcher)

	impactUC := ucSchedule.NewCheckScheduleImpact(repo, clk)
	saveScheduleUC := ucSchedule.NewSaveSchedule(
		repo, impactUC, recomputeUC, availCache, auditDispatcher,
	)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(
		repo, impactUC, recomputeUC, availCache, auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	locationHandler := handlers.NewLocationHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(repo, saveScheduleUC, deleteScheduleUC, impactUC)
	householdHandler := handlers.NewHouseholdHandler(db, repo, updateHouseholdUC)
	pickupHandler := handlers.NewPickupHandler(listPickupsUC, rescheduleUC, pickedUpUC, noShowUC)
	availabilityHandler := handlers.NewAvailabilityHandler(repo, slotsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/locations/:locationId/availability", availabilityHandler.Check)
			publicAPI.GET("/locations/:locationId/slots", availabilityHandler.Slots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/locations", locationHandler.List)
			secured.POST("/locations", locationHandler.Create)
			secured.GET("/locations/:locationId", locationHandler.Get)
			secured.PATCH("/locations/:locationId", locationHandler.Update)

			secured.GET("/locations/:locationId/schedules", scheduleHandler.List)
			secured.POST("/locations/:locationId/schedules", scheduleHandler.Create)
			secured.POST("/locations/:locationId/schedules/impact", scheduleHandler.Impact)
			secured.PUT("/locations/:locationId/schedules/:scheduleId", scheduleHandler.Update)
			secured.GET("/locations/:locationId/schedules/:scheduleId/impact", scheduleHandler.DeletionImpact)
			secured.DELETE("/locations/:locationId/schedules/:scheduleId", scheduleHandler.Delete)

			secured.GET("/locations/:locationId/pickups", pickupHandler.ListByDate)
			secured.PATCH("/locations/:locationId/pickups/:pickupId", pickupHandler.Reschedule)
			secured.POST("/locations/:locationId/pickups/:pickupId/picked-up", pickupHandler.MarkPickedUp)
			secured.POST("/locations/:locationId/pickups/:pickupId/no-show", pickupHandler.MarkNoShow)

			secured.POST("/households", householdHandler.Create)
			secured.GET("/households/:householdId/pickups", householdHandler.ListPickups)
			secured.PUT("/households/:householdId/pickups", householdHandler.UpdatePickups)

			secured.GET("/locations/:locationId/audit-logs", auditLogsHandler.List)
		}
	}
}
