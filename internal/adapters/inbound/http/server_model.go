package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Predict returns the predicted department for a free-text description.
func (api StaffcastServer) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	label, err := api.PredictDepartmentUseCase.Execute(r.Context(), req.Description)
	if err != nil {
		api.Logger.Printf("Error predicting department: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, PredictResp{PredictedDepartment: label})
}

// StartTraining launches a background training run.
func (api StaffcastServer) StartTraining(w http.ResponseWriter, r *http.Request) {
	run, err := api.TrainModelUseCase.Start(r.Context())
	if err != nil {
		api.Logger.Printf("Error starting training run: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusAccepted, toTrainingRun(run))
}

// CancelTraining stops the in-flight training run.
func (api StaffcastServer) CancelTraining(w http.ResponseWriter, r *http.Request) {
	run, err := api.TrainModelUseCase.Cancel(r.Context())
	if err != nil {
		api.Logger.Printf("Error cancelling training run: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTrainingRun(run))
}

// TrainingStatus returns the status of the most recent training run.
func (api StaffcastServer) TrainingStatus(w http.ResponseWriter, r *http.Request) {
	run := api.TrainModelUseCase.Status(r.Context())
	respondJSON(w, http.StatusOK, toTrainingRun(run))
}
