package routes

import (
	"net/http"

	"github.com/dropspace/dropspace/internal/app"
	"github.com/dropspace/dropspace/internal/handler"
	"github.com/dropspace/dropspace/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.UserService, app.Cfg)
	dashboard := handler.NewDashboardHandler(app.FolderService, app.FileService, app.UserService)
	folder := handler.NewFolderHandler(app.FolderService)
	file := handler.NewFileHandler(app.FileService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("GET /auth/callback", rateLimiter(auth.Callback))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Protected routes
	mux.HandleFunc("GET /app/dashboard", middleware.RequireAuth(dashboard.Overview))

	// Folders
	mux.HandleFunc("POST /app/folders", middleware.RequireAuth(folder.CreateRoot))
	mux.HandleFunc("POST /app/folders/nested", middleware.RequireAuth(folder.Create))
	mux.HandleFunc("DELETE /app/folders", middleware.RequireAuth(folder.Delete))

	// Files
	mux.HandleFunc("POST /app/files", middleware.RequireAuth(file.Upload))
	mux.HandleFunc("DELETE /app/files", middleware.RequireAuth(file.Delete))
	mux.HandleFunc("POST /app/files/download", middleware.RequireAuth(file.Download))

	// Middleware chain
	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)
}
