// @title           Estimator API
// @version         1.0
// @description     Material estimation and pricing backend - all endpoints used in the application.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	_ "backend/docs"
	"backend/handlers"
	"backend/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, origin)
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Authorization", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	db := storage.InitDB()
	gdb := storage.InitGormDB()

	// Setup cron job to purge stale sessions nightly
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc("30 3 * * *", func() {
		if err := storage.CleanupExpiredSessions(db); err != nil {
			log.Printf("CleanupExpiredSessions failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule session cleanup cron job: %v", err)
	}
	c.Start()

	r := gin.Default()

	r.Use(cors.New(CORSConfig()))

	// ==================== 1. AUTH & LOGIN ====================
	r.POST("/api/login", handlers.LoginHandler(db))
	r.POST("/api/refresh-token", handlers.RefreshTokenHandler(db))
	r.POST("/api/validate-session", handlers.ValidateSession(db))
	r.GET("/api/session", handlers.GetSessionHandler(db))
	r.DELETE("/api/session/:user_id", handlers.DeleteSessionHandler(db))

	// ==================== 2. USERS ====================
	r.POST("/api/create_user", handlers.CreateUser(db))

	// ==================== 3. PUBLIC SHARE ====================
	r.GET("/api/shared/:code", handlers.GetSharedEstimateHandler(db))

	auth := r.Group("/api", handlers.SessionAuthMiddleware(db))

	auth.POST("/logout", handlers.LogoutHandler(db))
	auth.GET("/get_user", handlers.GetUserFromSession(db))
	auth.PUT("/update_user", handlers.UpdateUser(db))
	auth.POST("/change_password", handlers.ChangePasswordHandler(db))

	// ==================== 4. CALCULATORS ====================
	auth.POST("/calculators/concrete", handlers.CalculateConcreteHandler(gdb))
	auth.POST("/calculators/framing", handlers.CalculateFramingHandler(gdb))
	auth.POST("/calculators/fencing", handlers.CalculateFencingHandler(gdb))
	auth.POST("/calculators/flooring", handlers.CalculateFlooringHandler(gdb))
	auth.POST("/calculators/foundation", handlers.CalculateFoundationHandler(gdb))
	auth.POST("/calculators/siding", handlers.CalculateSidingHandler(gdb))
	auth.POST("/calculators/tile", handlers.CalculateTileHandler(gdb))
	auth.POST("/calculators/plumbing", handlers.CalculatePlumbingHandler(gdb))
	auth.POST("/calculators/electrical", handlers.CalculateElectricalHandler(gdb))
	auth.POST("/calculators/paint", handlers.CalculatePaintHandler(gdb))
	auth.POST("/calculators/junk-removal", handlers.CalculateJunkRemovalHandler(gdb))
	auth.POST("/calculators/veneer", handlers.CalculateVeneerHandler(gdb))

	// ==================== 5. MATERIAL OVERRIDES ====================
	auth.POST("/materials", handlers.CreateMaterialHandler(gdb))
	auth.GET("/materials", handlers.GetMaterialsHandler(gdb))
	auth.PUT("/materials/:id", handlers.UpdateMaterialHandler(gdb))
	auth.PATCH("/materials/:id/archive", handlers.ArchiveMaterialHandler(gdb))
	auth.DELETE("/materials/:id", handlers.DeleteMaterialHandler(gdb))

	// ==================== 6. ESTIMATES ====================
	auth.POST("/estimates", handlers.SaveEstimateHandler(db))
	auth.GET("/estimates", handlers.ListEstimatesHandler(db))
	auth.GET("/estimates/:id", handlers.GetEstimateHandler(db))
	auth.PUT("/estimates/:id", handlers.UpdateEstimateHandler(db))
	auth.DELETE("/estimates/:id", handlers.DeleteEstimateHandler(db))
	auth.POST("/estimates/:id/share", handlers.ShareEstimateHandler(db))
	auth.POST("/estimates/:id/email", handlers.EmailEstimateHandler(db))
	auth.GET("/estimates/:id/pdf", handlers.GenerateEstimatePDF(db))
	auth.GET("/estimates/:id/csv", handlers.ExportEstimateCSV(db))
	auth.GET("/estimates/:id/xlsx", handlers.ExportEstimateXLSX(db))
	auth.GET("/estimates/:id/qr", handlers.GenerateEstimateQRCode(db))

	// ==================== 7. CLIENTS ====================
	auth.POST("/clients", handlers.CreateClientHandler(db))
	auth.GET("/clients", handlers.GetClientsHandler(db))
	auth.GET("/clients/:id", handlers.GetClientHandler(db))
	auth.PUT("/clients/:id", handlers.UpdateClientHandler(db))
	auth.DELETE("/clients/:id", handlers.DeleteClientHandler(db))

	// ==================== 8. SWAGGER ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
