package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/rmachado-dev/staffcast/internal/adapters/inbound/http"
	"github.com/rmachado-dev/staffcast/internal/adapters/outbound/dataset"
	"github.com/rmachado-dev/staffcast/internal/adapters/outbound/log"
	"github.com/rmachado-dev/staffcast/internal/adapters/outbound/modelstore"
	"github.com/rmachado-dev/staffcast/internal/adapters/outbound/notify"
	"github.com/rmachado-dev/staffcast/internal/adapters/outbound/postgres"
	"github.com/rmachado-dev/staffcast/internal/adapters/outbound/time"
	"github.com/rmachado-dev/staffcast/internal/ml"
	"github.com/rmachado-dev/staffcast/internal/telemetry"
	"github.com/rmachado-dev/staffcast/internal/usecases"
)

// NewStaffcastApp creates and returns a new instance of the staffcast application.
func NewStaffcastApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitPersonRepository{},
			&time.InitCurrentTimeProvider{},
			&dataset.InitLoader{},
			&modelstore.InitModelStore{},
			&notify.InitWebhook{},
			&ml.InitTrainer{},
			&ml.InitPredictor{},

			&usecases.InitAddPerson{},
			&usecases.InitUpdatePerson{},
			&usecases.InitRemovePerson{},
			&usecases.InitListPersons{},
			&usecases.InitSortPersonsByAge{},
			&usecases.InitParseImportFile{},
			&usecases.InitPredictDepartment{},
			&usecases.InitTrainModel{},
		).
		Host(
			&http.StaffcastServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
