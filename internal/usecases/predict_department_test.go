package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
	domain_mocks "github.com/rmachado-dev/staffcast/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
)

func TestPredictDepartmentImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		description     string
		setExpectations func(predictor *domain_mocks.MockPredictor)
		expectedLabel   string
		expectedErr     error
	}{
		"success": {
			description: "pay the invoice and close the books",
			setExpectations: func(predictor *domain_mocks.MockPredictor) {
				predictor.EXPECT().Predict("pay the invoice and close the books").Return("Finance", nil)
			},
			expectedLabel: "Finance",
		},
		"no-model-loaded": {
			description: "pay the invoice and close the books",
			setExpectations: func(predictor *domain_mocks.MockPredictor) {
				predictor.EXPECT().
					Predict("pay the invoice and close the books").
					Return("", domain.NewNoModelLoadedErr("no model artifact is loaded, train or load a model first"))
			},
			expectedErr: domain.NewNoModelLoadedErr("no model artifact is loaded, train or load a model first"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			predictor := domain_mocks.NewMockPredictor(t)
			tt.setExpectations(predictor)

			pdi := NewPredictDepartmentImpl(predictor)
			got, gotErr := pdi.Execute(context.Background(), tt.description)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedLabel, got)
		})
	}
}

func TestInitPredictDepartment_Initialize(t *testing.T) {
	ipd := InitPredictDepartment{}

	ctx, err := ipd.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[PredictDepartment]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
