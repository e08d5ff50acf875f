package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/freshfest/gateway-api/internal/api"
	apiMiddleware "github.com/freshfest/gateway-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authSvc, app.userSvc)
	userHandler := api.NewUserHandler(app.userSvc)
	baanHandler := api.NewBaanHandler(app.baanSvc, app.userSvc)
	groupHandler := api.NewGroupHandler(app.groupSvc)
	fileHandler := api.NewFileHandler(app.fileSvc, app.config.Server.MaxFileBytes())
	checkinHandler := api.NewCheckinHandler(app.checkinSvc)
	estampHandler := api.NewEstampHandler(app.estampSvc)
	staffHandler := api.NewStaffHandler(app.staffSvc, app.userSvc)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authSvc)

	// Public endpoints
	r.Get("/", api.Health)
	r.Post("/auth/verify", authHandler.VerifyTicket)
	r.Post("/auth/refreshToken", authHandler.RefreshToken)
	r.Get("/auth/google", authHandler.GoogleLogin)
	r.Post("/auth/google/verify", authHandler.VerifyGoogleLogin)
	r.Get("/group/{token}", groupHandler.FindByToken)
	r.Get("/baan", baanHandler.FindAll)
	r.Get("/estamp", estampHandler.FindAll)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/auth/me", authHandler.Me)
		r.Patch("/user", userHandler.Update)
		r.Post("/file/upload", fileHandler.Upload)

		r.Get("/group", groupHandler.FindOne)
		r.Post("/group/{token}", groupHandler.Join)
		r.Delete("/group/members/{member_id}", groupHandler.DeleteMember)
		r.Delete("/group/leave", groupHandler.Leave)
		r.Put("/group/select", groupHandler.SelectBaans)

		r.Get("/baan/user", baanHandler.FindUserBaan)

		r.Get("/checkin", checkinHandler.HasCheckin)
		r.Post("/checkin", checkinHandler.Checkin)
		r.Get("/freshy_night", checkinHandler.FreshyNight)

		r.Get("/estamp/my", estampHandler.FindUserEstamps)
		r.Post("/estamp/{token}", estampHandler.Claim)
		r.Get("/estamp/redeem", estampHandler.HasRedeemItem)
		r.Post("/estamp/redeem", estampHandler.RedeemItem)

		r.Get("/staff/check", staffHandler.Check)
		r.Post("/staff/checkin_freshy_night/{user_id}", staffHandler.CheckinFreshyNight)
		r.Get("/staff/user/{user_id}", staffHandler.FindUser)
	})

	// Static /baan/user above takes priority over the wildcard lookup.
	r.Get("/baan/{id}", baanHandler.FindOne)

	return r
}
