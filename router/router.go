package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"louay-store/config"
	"louay-store/handlers"
	"louay-store/middleware"
	"louay-store/models"
	"louay-store/realtime"
)

// NewRouter wires every route of the store API. Storefront routes are
// public; everything under /api/admin (except login) requires a valid
// JWT and the permission matching the operation.
func NewRouter(h *handlers.Handler, watcher *realtime.Watcher, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Catalog
	api.HandleFunc("/products", h.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.GetProductDetails).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/like", h.LikeProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}/like", h.UnlikeProduct).Methods(http.MethodDelete)

	// Reviews
	api.HandleFunc("/products/{id}/reviews", h.GetProductReviews).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/reviews", h.CreateReview).Methods(http.MethodPost)

	// Share links
	api.HandleFunc("/products/{id}/share", h.BuildShareLink).Methods(http.MethodGet)
	api.HandleFunc("/share/resolve", h.ResolveShareLink).Methods(http.MethodGet)

	// Q&A
	api.HandleFunc("/questions", h.GetQuestions).Methods(http.MethodGet)
	api.HandleFunc("/questions", h.CreateQuestion).Methods(http.MethodPost)

	// Carts
	api.HandleFunc("/carts", h.CreateCart).Methods(http.MethodPost)
	api.HandleFunc("/carts/{id}", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/carts/{id}", h.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{id}/items", h.AddCartItem).Methods(http.MethodPost)
	api.HandleFunc("/carts/{id}/items/{productId}", h.SetCartQuantity).Methods(http.MethodPut)
	api.HandleFunc("/carts/{id}/items/{productId}", h.RemoveCartItem).Methods(http.MethodDelete)

	// Shipping
	api.HandleFunc("/wilayas", h.ListWilayas).Methods(http.MethodGet)
	api.HandleFunc("/wilayas/{code}/communes", h.ListCommunes).Methods(http.MethodGet)
	api.HandleFunc("/wilayas/{code}/quote", h.QuoteShipping).Methods(http.MethodGet)

	// Checkout and tracking
	api.HandleFunc("/orders", h.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/track/{code}", h.TrackOrder).Methods(http.MethodGet)

	// Admin login stays outside the authenticated subrouter
	api.HandleFunc("/admin/login", h.AdminLogin).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	admin.Handle("/products",
		protect(h.CreateProduct, models.PermissionManageProducts)).Methods(http.MethodPost)
	admin.Handle("/products/{id}",
		protect(h.UpdateProduct, models.PermissionManageProducts)).Methods(http.MethodPut)
	admin.Handle("/products/{id}",
		protect(h.DeleteProduct, models.PermissionManageProducts)).Methods(http.MethodDelete)

	admin.Handle("/orders",
		protect(h.GetOrders, models.PermissionListOrders)).Methods(http.MethodGet)
	admin.Handle("/orders/{id}",
		protect(h.GetOrderDetails, models.PermissionListOrders)).Methods(http.MethodGet)
	admin.Handle("/orders/{id}/status",
		protect(h.UpdateOrderStatus, models.PermissionUpdateOrder)).Methods(http.MethodPatch)

	admin.Handle("/reviews/{id}",
		protect(h.DeleteReview, models.PermissionManageReviews)).Methods(http.MethodDelete)

	admin.Handle("/questions/{id}/answers",
		protect(h.CreateAnswer, models.PermissionManageQuestions)).Methods(http.MethodPost)
	admin.Handle("/questions/{id}",
		protect(h.DeleteQuestion, models.PermissionManageQuestions)).Methods(http.MethodDelete)
	admin.Handle("/answers/{id}",
		protect(h.UpdateAnswer, models.PermissionManageQuestions)).Methods(http.MethodPut)
	admin.Handle("/answers/{id}",
		protect(h.DeleteAnswer, models.PermissionManageQuestions)).Methods(http.MethodDelete)

	admin.Handle("/reports/monthly",
		protect(h.DownloadMonthlyReport, models.PermissionViewReports)).Methods(http.MethodGet)
	admin.Handle("/reports/monthly/insights",
		protect(h.MonthlyReportInsights, models.PermissionViewReports)).Methods(http.MethodGet)

	admin.Handle("/ai/description",
		protect(h.GenerateDescription, models.PermissionUseAI)).Methods(http.MethodPost)
	admin.Handle("/ai/image",
		protect(h.GenerateProductImage, models.PermissionUseAI)).Methods(http.MethodPost)

	admin.HandleFunc("/roles", h.ListRoles).Methods(http.MethodGet)
	admin.HandleFunc("/stream", h.StreamChanges(watcher)).Methods(http.MethodGet)

	return r
}

// protect wraps a handler with a per-route permission check. The auth
// middleware already put the claims in the request context.
func protect(handler http.HandlerFunc, permission models.Permission) http.Handler {
	return middleware.RequirePermission(permission)(handler)
}
