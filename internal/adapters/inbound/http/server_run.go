package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"github.com/rmachado-dev/staffcast/internal/usecases"
	"github.com/rs/cors"
)

// StaffcastServer is the REST API HTTP server for the staffcast application.
type StaffcastServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8080"`
	Logger                   *log.Logger                `resolve:""`
	AddPersonUseCase         usecases.AddPerson         `resolve:""`
	UpdatePersonUseCase      usecases.UpdatePerson      `resolve:""`
	RemovePersonUseCase      usecases.RemovePerson      `resolve:""`
	ListPersonsUseCase       usecases.ListPersons       `resolve:""`
	SortPersonsByAgeUseCase  usecases.SortPersonsByAge  `resolve:""`
	ParseImportFileUseCase   usecases.ParseImportFile   `resolve:""`
	PredictDepartmentUseCase usecases.PredictDepartment `resolve:""`
	TrainModelUseCase        usecases.TrainModel        `resolve:""`
}

// Routes registers all API routes on mux.
func (api StaffcastServer) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", api.Healthz)
	mux.HandleFunc("GET /introspect", IntrospectHandler)
	mux.HandleFunc("GET /persons", api.ListPersons)
	mux.HandleFunc("POST /persons", api.AddPerson)
	mux.HandleFunc("GET /persons/sorted-by-age", api.SortPersonsByAge)
	mux.HandleFunc("PUT /persons/{id}", api.UpdatePerson)
	mux.HandleFunc("DELETE /persons/{id}", api.RemovePerson)
	mux.HandleFunc("POST /import/parse", api.ParseImport)
	mux.HandleFunc("POST /predict", api.Predict)
	mux.HandleFunc("POST /model/train", api.StartTraining)
	mux.HandleFunc("DELETE /model/train", api.CancelTraining)
	mux.HandleFunc("GET /model/status", api.TrainingStatus)
}

// Run starts the HTTP server for the StaffcastServer.
func (api StaffcastServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	api.Routes(mux)

	var h http.Handler = telemetry.Middleware("staffcast-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("StaffcastServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("StaffcastServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("StaffcastServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the StaffcastServer is ready by performing a health check.
func (api StaffcastServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports liveness of the server.
func (api StaffcastServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
