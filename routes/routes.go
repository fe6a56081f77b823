package routes

import (
	"net/http"
	"time"

	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Match     *handlers.MatchHandler
	Standings *handlers.StandingsHandler
	Export    *handlers.ExportHandler
	Dashboard *handlers.DashboardHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	adminOnly := func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.JWTSecret))
		r.Use(middleware.Authorize(string(models.RoleAdmin)))
	}

	router.Get("/swagger/doc.json", handlers.SwaggerDoc)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// The websocket route stays outside the timeout middleware.
	router.Get("/ws", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Post("/auth/login", h.Auth.Login)
		r.Get("/dashboard", h.Dashboard.Stats)
		r.Get("/standings", h.Standings.GetStandings)
		r.Get("/pairings", h.Standings.GetPairings)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.ListPlayers)
			r.Get("/count", h.Player.CountPlayers)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", h.Player.RegisterPlayer)
				r.Delete("/", h.Player.DeletePlayers)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.ListMatches)
			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", h.Match.ReportMatch)
				r.Delete("/", h.Match.DeleteMatches)
			})
		})

		r.Group(func(r chi.Router) {
			adminOnly(r)
			r.Post("/exports", h.Export.ExportRound)
		})
	})
}
