package routes

import (
	"fmt"

	"tourbooking/configs"
	"tourbooking/controllers"
	"tourbooking/entity"
	"tourbooking/middlewares"
	"tourbooking/repository"
	"tourbooking/services"
	"tourbooking/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.BookingHub) error {
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("routes: sql db: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tourRepo := repository.NewTourRepository(db)
	imageRepo := repository.NewTourImageRepository(db)
	destRepo := repository.NewDestinationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(sqlDB, configs.SQLDriverName(cfg.DBDriver))

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	tourSvc := services.NewTourService(db, tourRepo, imageRepo)
	destSvc := services.NewDestinationService(destRepo, tourRepo)
	var notifier services.BookingNotifier
	if hub != nil {
		notifier = hub
	}
	bookingSvc := services.NewBookingService(db, bookingRepo, tourRepo, notifier)
	reviewSvc := services.NewReviewService(db, reviewRepo, tourRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, bookingSvc,
		services.NewGatewaySigner(cfg.PaymentSecret), cfg.PaymentGatewayURL, cfg.PaymentReturnURL)
	reportSvc := services.NewReportService(reportRepo)
	exportSvc := services.NewExportService(bookingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tourCtrl := controllers.NewTourController(tourSvc)
	destCtrl := controllers.NewDestinationController(destSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	adminCtrl := controllers.NewAdminController(reportSvc, userSvc, exportSvc)

	// token + live account check; role comes from the users row, not the token
	authenticate := middlewares.AuthMiddleware(cfg.JWTSecret)
	currentUser := middlewares.CurrentUser(userRepo)
	requireAuth := []gin.HandlerFunc{authenticate, currentUser}
	requireAdmin := []gin.HandlerFunc{authenticate, currentUser, middlewares.RequireRole(entity.RoleAdmin)}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", requireAuth...)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalogue
	r.GET("/tours", tourCtrl.List)
	r.GET("/tours/featured", tourCtrl.Featured)
	r.GET("/tours/:id", tourCtrl.Detail)
	r.GET("/tours/:id/images", tourCtrl.Images)
	r.GET("/tours/:id/reviews", reviewCtrl.ListForTour)
	r.GET("/destinations", destCtrl.List)
	r.GET("/destinations/:id", destCtrl.Detail)

	// Gateway callback (ตรวจ signature แทน token)
	r.GET("/payments/return", paymentCtrl.Return)

	// User (ต้องล็อกอิน)
	u := r.Group("", requireAuth...)
	{
		u.POST("/tours/:id/reviews", reviewCtrl.Create)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)

		u.POST("/bookings", bookingCtrl.Create)
		u.GET("/bookings/:id", bookingCtrl.Detail)
		u.PATCH("/bookings/:id/cancel", bookingCtrl.Cancel)
		u.POST("/bookings/:id/payment", paymentCtrl.Checkout)
	}

	// Profile
	profile := r.Group("/profile", requireAuth...)
	{
		profile.GET("/bookings", bookingCtrl.ListForMe)
		profile.GET("/reviews", reviewCtrl.ListForMe)
	}

	// Admin (admin only)
	admin := r.Group("/admin", requireAdmin...)
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.POST("/tours", tourCtrl.Create)
		admin.PUT("/tours/:id", tourCtrl.Update)
		admin.DELETE("/tours/:id", tourCtrl.Delete)
		admin.POST("/tours/:id/images", tourCtrl.AddImage)
		admin.DELETE("/tour-images/:id", tourCtrl.DeleteImage)

		admin.POST("/destinations", destCtrl.Create)
		admin.PUT("/destinations/:id", destCtrl.Update)
		admin.DELETE("/destinations/:id", destCtrl.Delete)

		admin.GET("/bookings", bookingCtrl.AdminList)
		admin.GET("/bookings/export", adminCtrl.ExportBookings)
		admin.PATCH("/bookings/:id/confirm", bookingCtrl.AdminConfirm)
		admin.PATCH("/bookings/:id/cancel", bookingCtrl.AdminCancel)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PATCH("/users/:id", adminCtrl.UpdateUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}

	// Live booking feed for the admin dashboard
	if hub != nil {
		r.GET("/ws/admin/bookings",
			middlewares.WSAuthMiddleware(cfg.JWTSecret),
			currentUser,
			middlewares.RequireRole(entity.RoleAdmin),
			hub.HandleWebSocket)
	}
	return nil
}
