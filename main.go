package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-management-backend/config"
	"hotel-management-backend/controllers"
	"hotel-management-backend/routes"
	"hotel-management-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("Database connection established and migrations applied")

	// Services
	reservationService := services.NewReservationService(db)
	roomService := services.NewRoomService(db)
	customerService := services.NewCustomerService(db)
	platformService := services.NewPlatformService(db)
	adminService := services.NewAdminService(db)
	noteService := services.NewNoteService(db)
	calendarService := services.NewCalendarService(reservationService)
	revenueService := services.NewRevenueService(reservationService, platformService)

	// Controllers
	router := routes.SetupRouter(routes.Controllers{
		Reservations: controllers.NewReservationController(reservationService),
		CheckInOut:   controllers.NewCheckInOutController(reservationService),
		Rooms:        controllers.NewRoomController(roomService),
		Cleaning:     controllers.NewCleaningController(roomService),
		Customers:    controllers.NewCustomerController(customerService, reservationService),
		Platforms:    controllers.NewPlatformController(platformService),
		Admins:       controllers.NewAdminController(adminService),
		Notes:        controllers.NewNoteController(noteService),
		Calendar:     controllers.NewCalendarController(calendarService),
		Revenue:      controllers.NewRevenueController(revenueService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
