package http

import (
	"github.com/google/uuid"
	"github.com/rmachado-dev/staffcast/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.DataErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	case *domain.ConflictErr:
		errResp.Error.Code = CONFLICT
		errResp.Error.Message = e.Error()
	case *domain.TrainingInProgressErr:
		errResp.Error.Code = CONFLICT
		errResp.Error.Message = e.Error()
	case *domain.NoModelLoadedErr:
		errResp.Error.Code = CONFLICT
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toPerson(p domain.Person) PersonResp {
	return PersonResp{
		Id:                  p.ID,
		Name:                p.Name,
		Email:               p.Email,
		Age:                 p.Age,
		Description:         p.Description,
		PredictedDepartment: p.PredictedDepartment,
		Department:          p.Department,
	}
}

func toTrainingRun(run domain.TrainingRun) TrainingRunResp {
	resp := TrainingRunResp{
		State: string(run.State),
		Error: run.Error,
	}
	if run.ID != uuid.Nil {
		resp.Id = run.ID.String()
	}
	if !run.StartedAt.IsZero() {
		startedAt := run.StartedAt
		resp.StartedAt = &startedAt
	}
	if !run.FinishedAt.IsZero() {
		finishedAt := run.FinishedAt
		resp.FinishedAt = &finishedAt
	}
	if run.Metrics != nil {
		resp.Metrics = &MetricsResp{
			MacroAccuracy: run.Metrics.MacroAccuracy,
			MicroAccuracy: run.Metrics.MicroAccuracy,
			LogLoss:       run.Metrics.LogLoss,
		}
	}
	return resp
}
