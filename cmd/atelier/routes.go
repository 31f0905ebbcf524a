package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	deleteclient "atelier/http-server/clients/delete"
	getclients "atelier/http-server/clients/get"
	saveclient "atelier/http-server/clients/save"
	updateclient "atelier/http-server/clients/update"
	getdashboard "atelier/http-server/dashboard/get"
	reportexcel "atelier/http-server/generate-report/generate-excel"
	applypattern "atelier/http-server/orders/apply-pattern"
	deleteorder "atelier/http-server/orders/delete"
	getorders "atelier/http-server/orders/get"
	saveorder "atelier/http-server/orders/save"
	updateorder "atelier/http-server/orders/update"
	deletepattern "atelier/http-server/patterns/delete"
	getpatterns "atelier/http-server/patterns/get"
	savepattern "atelier/http-server/patterns/save"
	updatepattern "atelier/http-server/patterns/update"
	getportal "atelier/http-server/portal/get"
	"atelier/internal/config"
	"atelier/internal/middleware/auth"
	"atelier/internal/service/dashboard"
	generate_excel "atelier/internal/service/generate-excel"
	"atelier/internal/service/measure"
	"atelier/internal/storage/mysql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	patternService *measure.PatternService,
	dashboardService *dashboard.Service,
	reportService *generate_excel.GenerateExcelService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// clients
	router.Get("/api/clients", getclients.GetClients(log, storage))
	router.Get("/api/clients/{id}", getclients.GetClient(log, storage))
	router.Post("/api/clients", saveclient.SaveClient(log, storage))
	router.Put("/api/clients/{id}", updateclient.UpdateClient(log, storage))
	router.Delete("/api/clients/{id}", deleteclient.DeleteClient(log, storage))

	// patterns
	router.Get("/api/patterns", getpatterns.GetPatterns(log, storage))
	router.Post("/api/patterns", savepattern.SavePattern(log, storage))
	router.Put("/api/patterns/{id}", updatepattern.UpdatePattern(log, storage))
	router.Delete("/api/patterns/{id}", deletepattern.DeletePattern(log, storage))

	// orders, sorted by delivery date at the source
	router.Get("/api/orders", getorders.GetOrders(log, storage))
	router.Get("/api/orders/order/{id}", getorders.GetOrder(log, storage))
	router.Post("/api/orders", saveorder.SaveOrder(log, storage))
	router.Put("/api/orders/{id}", updateorder.UpdateOrder(log, storage))
	router.Put("/api/orders/{id}/status", updateorder.UpdateOrderStatus(log, storage))
	router.Post("/api/orders/{id}/apply-pattern", applypattern.ApplyPatternOperation(log, patternService))
	router.Delete("/api/orders/{id}", deleteorder.DeleteOrder(log, storage))

	// dashboard widgets
	router.Get("/api/dashboard", getdashboard.GetDashboard(log, dashboardService))

	// public per-order view the customer link points at
	router.Get("/api/portal/orders/{orderId}", getportal.GetPortalOrder(log, storage))

	// excel export for the workshop owner
	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).
		Get("/api/report/excel", reportexcel.GenerateReportExcel(log, reportService))

	// static SPA build, when present
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend build not found, serving API only", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: any other path serves index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
