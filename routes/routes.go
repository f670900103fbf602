package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hotel-management-backend/controllers"
	"hotel-management-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter wires into the route table.
type Controllers struct {
	Reservations *controllers.ReservationController
	CheckInOut   *controllers.CheckInOutController
	Rooms        *controllers.RoomController
	Cleaning     *controllers.CleaningController
	Customers    *controllers.CustomerController
	Platforms    *controllers.PlatformController
	Admins       *controllers.AdminController
	Notes        *controllers.NoteController
	Calendar     *controllers.CalendarController
	Revenue      *controllers.RevenueController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Calendar and revenue views are read-heavy; short response cache.
	cacheStore := cache.New(time.Minute, 5*time.Minute)
	caching := middleware.Cache(cacheStore, time.Minute)

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(rate.Limit(20), 10))
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", ctrl.Reservations.GetReservations)
			reservations.POST("", ctrl.Reservations.CreateReservation)

			// Must sit before /:id so "room" doesn't hit the id handler.
			reservations.GET("/room/:room_id/availability", ctrl.Reservations.CheckAvailability)

			reservations.GET("/:id", ctrl.Reservations.GetReservation)
			reservations.PUT("/:id/status", ctrl.Reservations.UpdateStatus)
		}

		checkinout := api.Group("/checkinout")
		{
			checkinout.POST("/checkin/:id", ctrl.CheckInOut.CheckIn)
			checkinout.POST("/checkout/:id", ctrl.CheckInOut.CheckOut)
			checkinout.GET("/upcoming", ctrl.CheckInOut.Upcoming)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctrl.Rooms.GetRooms)
			rooms.POST("", ctrl.Rooms.CreateRoom)
			rooms.GET("/:id", ctrl.Rooms.GetRoom)
		}

		cleaning := api.Group("/cleaning")
		{
			cleaning.GET("/rooms", ctrl.Cleaning.GetCleaningRooms)
			cleaning.POST("/complete/:room_id", ctrl.Cleaning.CompleteCleaning)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", ctrl.Customers.GetCustomers)
			customers.POST("", ctrl.Customers.CreateCustomer)
			customers.GET("/:id", ctrl.Customers.GetCustomer)
			customers.GET("/:id/reservations", ctrl.Customers.GetCustomerReservations)
		}

		platforms := api.Group("/platforms")
		{
			platforms.GET("", ctrl.Platforms.GetPlatforms)
			platforms.POST("", ctrl.Platforms.CreatePlatform)
		}

		admins := api.Group("/admins")
		{
			admins.GET("", ctrl.Admins.GetAdmins)
			admins.POST("", ctrl.Admins.CreateAdmin)
			admins.GET("/:id", ctrl.Admins.GetAdmin)
			admins.DELETE("/:id", ctrl.Admins.DeleteAdmin)
		}

		notes := api.Group("/room-notes")
		{
			notes.GET("", ctrl.Notes.GetNotes)
			notes.POST("", ctrl.Notes.CreateNote)
			notes.GET("/urgent", ctrl.Notes.GetUrgentNotes)
			notes.GET("/after-checkout", ctrl.Notes.GetAfterCheckoutNotes)
			notes.GET("/alerts", ctrl.Notes.GetAlerts)
			notes.PUT("/:id/progress", ctrl.Notes.UpdateProgress)
			notes.POST("/:id/complete", ctrl.Notes.CompleteNote)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("/month/:year/:month", caching, ctrl.Calendar.GetMonth)
			calendar.GET("/week/:year/:week", caching, ctrl.Calendar.GetWeek)
		}

		revenue := api.Group("/revenue")
		{
			revenue.GET("/daily/:start/:end", caching, ctrl.Revenue.GetDaily)
			revenue.GET("/monthly/:year", caching, ctrl.Revenue.GetMonthly)
			revenue.GET("/platform/:start/:end", caching, ctrl.Revenue.GetByPlatform)
		}
	}

	return r
}
