package http

import "time"

// ErrorCode classifies API errors for clients.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	CONFLICT      ErrorCode = "CONFLICT"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the payload of an ErrorResp.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the uniform error envelope of the API.
type ErrorResp struct {
	Error Error `json:"error"`
}

// PersonReq is the request body for creating or updating a person.
type PersonReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Department  string `json:"department,omitempty"`
}

// PersonResp is the API representation of a person.
type PersonResp struct {
	Id                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Age                 int    `json:"age"`
	Description         string `json:"description"`
	PredictedDepartment string `json:"predicted_department,omitempty"`
	Department          string `json:"department,omitempty"`
}

// ListPersonsResp is the response body for person listings.
type ListPersonsResp struct {
	Items []PersonResp `json:"items"`
}

// ParseImportReq is the request body for parsing a bulk import file.
type ParseImportReq struct {
	Path string `json:"path"`
}

// ParseImportResp is the parsed person draft of an import file.
type ParseImportResp struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Description string `json:"description"`
}

// PredictReq is the request body for a single prediction.
type PredictReq struct {
	Description string `json:"description"`
}

// PredictResp is the response body for a single prediction.
type PredictResp struct {
	PredictedDepartment string `json:"predicted_department"`
}

// MetricsResp holds the evaluation metrics of a completed training run.
type MetricsResp struct {
	MacroAccuracy float64 `json:"macro_accuracy"`
	MicroAccuracy float64 `json:"micro_accuracy"`
	LogLoss       float64 `json:"log_loss"`
}

// TrainingRunResp is the API representation of a training run.
type TrainingRunResp struct {
	Id         string       `json:"id,omitempty"`
	State      string       `json:"state"`
	StartedAt  *time.Time   `json:"started_at,omitempty"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
	Metrics    *MetricsResp `json:"metrics,omitempty"`
	Error      string       `json:"error,omitempty"`
}
