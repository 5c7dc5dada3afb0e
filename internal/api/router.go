package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/pulsepath/pulsepath/docs"
	"github.com/pulsepath/pulsepath/internal/api/handler"
	"github.com/pulsepath/pulsepath/internal/api/middleware"
)

type Router struct {
	stressLogHandler *handler.StressLogHandler
	analyticsHandler *handler.AnalyticsHandler
	medicineHandler  *handler.MedicineHandler
	emergencyHandler *handler.EmergencyHandler

	serveStatic bool
	staticDir   string
}

func NewRouter(
	stressLogHandler *handler.StressLogHandler,
	analyticsHandler *handler.AnalyticsHandler,
	medicineHandler *handler.MedicineHandler,
	emergencyHandler *handler.EmergencyHandler,
) *Router {
	return &Router{
		stressLogHandler: stressLogHandler,
		analyticsHandler: analyticsHandler,
		medicineHandler:  medicineHandler,
		emergencyHandler: emergencyHandler,
	}
}

// WithStaticFallback serves the bundled front end from dir for any route the
// API does not claim. Used in production mode.
func (rt *Router) WithStaticFallback(dir string) *Router {
	rt.serveStatic = true
	rt.staticDir = dir
	return rt
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Stress logging
		r.Post("/stress-log", rt.stressLogHandler.Submit)
		r.Get("/stress-logs/{userId}", rt.stressLogHandler.List)
		r.Get("/stress-analytics/{userId}", rt.analyticsHandler.Analytics)
		r.Get("/stress-insights/{userId}", rt.analyticsHandler.Insights)
		r.Delete("/reset-database", rt.stressLogHandler.Reset)

		// Medicine reminders
		r.Route("/medicines", func(r chi.Router) {
			r.Post("/", rt.medicineHandler.Add)
			r.Get("/{userId}", rt.medicineHandler.List)
			r.Patch("/{id}/taken", rt.medicineHandler.ToggleTaken)
			r.Delete("/{id}", rt.medicineHandler.Remove)
		})

		// Emergency support
		r.Get("/emergency-resources", rt.emergencyHandler.Resources)
		r.Route("/emergency-contact/{userId}", func(r chi.Router) {
			r.Get("/", rt.emergencyHandler.GetContact)
			r.Put("/", rt.emergencyHandler.SetContact)
		})
	})

	// Production: serve the bundled front end for everything else, with
	// index.html as the SPA fallback.
	if rt.serveStatic {
		r.NotFound(spaHandler(rt.staticDir))
	}

	return r
}

func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
