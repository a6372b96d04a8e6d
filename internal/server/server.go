// Package server wires the handlers, middleware, and stores into the
// HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"event-marketplace/internal/auth"
	"event-marketplace/internal/cart"
	"event-marketplace/internal/catalog"
	"event-marketplace/internal/config"
	"event-marketplace/internal/handlers"
	"event-marketplace/internal/middleware"
	"event-marketplace/internal/services"
	"event-marketplace/internal/storage"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

// Server owns the HTTP server and the stores behind it
type Server struct {
	cfg    *config.Config
	logger *logrus.Logger
	http   *http.Server
}

// New builds the full application: stores, services, handlers, routes
func New(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	cat, err := catalog.New(catalog.SeedEvents(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	slot, err := storage.NewSlot(cfg.Storage.CartPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart slot: %w", err)
	}
	cartStore := cart.NewStore(slot, logger)

	authService, err := auth.NewService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth service: %w", err)
	}

	notifier := services.NewNotifier(logger)
	checkoutService := services.NewCheckoutService(cat, cartStore, notifier, cfg.Payment.Delay, logger)

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	limiter := middleware.NewLoginRateLimiter(5, 15*time.Minute)

	eventHandler := handlers.NewEventHandler(cat)
	cartHandler := handlers.NewCartHandler(cartStore, cat, checkoutService)
	authHandler := handlers.NewAuthHandler(authService, sessionStore, limiter)
	registrationHandler := handlers.NewRegistrationHandler(authService)
	bookingHandler := handlers.NewBookingHandler(checkoutService)
	adminHandler := handlers.NewAdminHandler(cat, checkoutService, notifier)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(logger))
	r.Use(authMiddleware.LoadUser)

	// Public catalog
	r.Get("/events", eventHandler.ListEvents)
	r.Get("/events/featured", eventHandler.FeaturedEvents)
	r.Get("/events/categories", eventHandler.ListCategories)
	r.Get("/events/{id}", eventHandler.GetEvent)

	// Authentication
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.CurrentUser)
	})

	// Registration wizard
	r.Route("/register", func(r chi.Router) {
		r.Post("/", registrationHandler.Start)
		r.Patch("/{id}", registrationHandler.UpdateDraft)
		r.Post("/{id}/documents", registrationHandler.UploadDocuments)
		r.Post("/{id}/next", registrationHandler.Next)
		r.Post("/{id}/previous", registrationHandler.Previous)
		r.Post("/{id}/submit", registrationHandler.Submit)
	})

	// Cart and checkout
	r.Route("/cart", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", cartHandler.ViewCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items", cartHandler.UpdateItem)
		r.Delete("/items", cartHandler.RemoveItem)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/checkout", cartHandler.Checkout)
	})

	// Bookings
	r.Route("/bookings", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
	})

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.RequireAdmin)
		r.Post("/events", adminHandler.StartEventFlow)
		r.Patch("/events/flow/{id}", adminHandler.UpdateEventDraft)
		r.Post("/events/flow/{id}/next", adminHandler.EventFlowNext)
		r.Post("/events/flow/{id}/previous", adminHandler.EventFlowPrevious)
		r.Post("/events/flow/{id}/submit", adminHandler.SubmitEventFlow)
		r.Get("/events/{id}/attendees", adminHandler.Attendees)
		r.Get("/templates", adminHandler.ListTemplates)
		r.Put("/templates/{name}", adminHandler.UpdateTemplate)
	})

	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Start serves until the listener fails or Shutdown is called
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("starting HTTP server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
