package routes

import (
	"encoding/json"
	"net/http"

	"github.com/halaleats/backend/internal/api/handlers"
	"github.com/halaleats/backend/internal/api/middleware"
	"github.com/halaleats/backend/internal/domain/providers"
	"github.com/halaleats/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	restaurantHandler *handlers.RestaurantHandler
	userHandler       *handlers.UserHandler
	reviewHandler     *handlers.ReviewHandler
	friendHandler     *handlers.FriendHandler
	activityHandler   *handlers.ActivityHandler

	verifier providers.TokenVerifier
	metrics  *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	restaurantHandler *handlers.RestaurantHandler,
	userHandler *handlers.UserHandler,
	reviewHandler *handlers.ReviewHandler,
	friendHandler *handlers.FriendHandler,
	activityHandler *handlers.ActivityHandler,
	verifier providers.TokenVerifier,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		restaurantHandler: restaurantHandler,
		userHandler:       userHandler,
		reviewHandler:     reviewHandler,
		friendHandler:     friendHandler,
		activityHandler:   activityHandler,

		verifier: verifier,
		metrics:  metrics,
	}
}

// SetupRoutes configures all application routes. Restaurant reads and the
// root/health endpoints are public; every other route requires a verified
// bearer token.
func (r *Router) SetupRoutes() http.Handler {
	auth := middleware.AuthMiddleware(r.verifier)
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	r.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Welcome to the Halal Eats API!"})
	})

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Restaurant endpoints (reads are public)
	r.mux.HandleFunc("GET /api/restaurants", r.restaurantHandler.ListRestaurants)
	r.mux.HandleFunc("GET /api/restaurants/{id}", r.restaurantHandler.GetRestaurant)
	r.mux.Handle("POST /api/restaurants", protected(r.restaurantHandler.CreateRestaurant))
	r.mux.Handle("PUT /api/restaurants/{id}", protected(r.restaurantHandler.UpdateRestaurant))
	r.mux.Handle("DELETE /api/restaurants/{id}", protected(r.restaurantHandler.DeleteRestaurant))

	// User endpoints
	r.mux.Handle("GET /api/users", protected(r.userHandler.ListUsers))
	r.mux.Handle("GET /api/users/{id}", protected(r.userHandler.GetUser))
	r.mux.Handle("POST /api/users", protected(r.userHandler.CreateUser))
	r.mux.Handle("PUT /api/users/{id}", protected(r.userHandler.UpdateUser))
	r.mux.Handle("DELETE /api/users/{id}", protected(r.userHandler.DeleteUser))

	// Review endpoints
	r.mux.Handle("GET /api/reviews", protected(r.reviewHandler.ListReviews))
	r.mux.Handle("GET /api/reviews/{id}", protected(r.reviewHandler.GetReview))
	r.mux.Handle("POST /api/reviews", protected(r.reviewHandler.CreateReview))
	r.mux.Handle("PUT /api/reviews/{id}", protected(r.reviewHandler.UpdateReview))
	r.mux.Handle("DELETE /api/reviews/{id}", protected(r.reviewHandler.DeleteReview))

	// Friend endpoints
	r.mux.Handle("GET /api/friends", protected(r.friendHandler.ListFriends))
	r.mux.Handle("GET /api/friends/{id}", protected(r.friendHandler.GetFriend))
	r.mux.Handle("POST /api/friends", protected(r.friendHandler.CreateFriend))
	r.mux.Handle("DELETE /api/friends/{id}", protected(r.friendHandler.DeleteFriend))

	// Activity log endpoints
	r.mux.Handle("GET /api/activity", protected(r.activityHandler.ListActivity))
	r.mux.Handle("POST /api/activity", protected(r.activityHandler.CreateActivity))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)

	// CORS wraps everything so preflights never hit auth
	handler = middleware.CORSMiddleware(handler)

	return handler
}
