package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hothour/internal/handler/api"
	"hothour/internal/handler/middleware"
	"hothour/internal/handler/ws"
	"hothour/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	auctionHandler *api.AuctionHandler,
	reservationHandler *api.ReservationHandler,
	notificationHandler *api.NotificationHandler,
	wsHandler *ws.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, auctionHandler, reservationHandler, notificationHandler, wsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	auctionHandler *api.AuctionHandler,
	reservationHandler *api.ReservationHandler,
	notificationHandler *api.NotificationHandler,
	wsHandler *ws.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		auctions := apiGroup.Group("/auctions")
		{
			addRoutes(auctions, []route{
				{Method: http.MethodGet, Path: "", Handler: auctionHandler.ListAuctions},
				{Method: http.MethodGet, Path: "/:id", Handler: auctionHandler.GetAuction},
				{Method: http.MethodGet, Path: "/:id/price", Handler: auctionHandler.GetPrice},
			})

			authRequired := auctions.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/:id/book", Handler: reservationHandler.BookAuction},
			})

			adminOnly := auctions.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: auctionHandler.CreateAuction},
				{Method: http.MethodPut, Path: "/:id", Handler: auctionHandler.UpdateAuction},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: auctionHandler.CancelAuction},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListAllReservations},
				{Method: http.MethodGet, Path: "/reservations/code/:code", Handler: reservationHandler.GetReservationByCode},
				{Method: http.MethodPost, Path: "/reservations/:id/checkin", Handler: reservationHandler.CheckIn},
				{Method: http.MethodGet, Path: "/notifications", Handler: notificationHandler.ListNotifications},
				{Method: http.MethodGet, Path: "/notifications/unread-count", Handler: notificationHandler.UnreadCount},
				{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: notificationHandler.MarkRead},
				{Method: http.MethodPost, Path: "/notifications/read-all", Handler: notificationHandler.MarkAllRead},
				{Method: http.MethodDelete, Path: "/notifications/read", Handler: notificationHandler.DeleteRead},
			})
		}
	}

	wsGroup := engine.Group("/ws")
	{
		wsGroup.GET("/auctions/:id", wsHandler.ServeAuction)

		wsAuth := wsGroup.Group("")
		wsAuth.Use(authMiddleware.RequireAuth())
		wsAuth.GET("/me", wsHandler.ServeUser)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
