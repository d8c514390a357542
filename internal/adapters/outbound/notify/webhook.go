// Package notify reports finished training runs to an optional webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rmachado-dev/staffcast/internal/domain"
)

// trainingCompletedPayload is the JSON body posted to the webhook.
type trainingCompletedPayload struct {
	RunID      string          `json:"run_id"`
	State      string          `json:"state"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Error      string          `json:"error,omitempty"`
	Metrics    *metricsPayload `json:"metrics,omitempty"`
}

type metricsPayload struct {
	MacroAccuracy float64 `json:"macro_accuracy"`
	MicroAccuracy float64 `json:"micro_accuracy"`
	LogLoss       float64 `json:"log_loss"`
}

// Webhook implements domain.TrainingNotifier by POSTing the run outcome to
// a configured URL. An empty URL disables delivery. Failures are logged,
// never propagated: the training run already succeeded or failed on its own
// terms.
type Webhook struct {
	url    string
	client *http.Client
	logger *log.Logger
}

// NewWebhook creates a Webhook notifier.
func NewWebhook(url string, client *http.Client, logger *log.Logger) Webhook {
	return Webhook{url: url, client: client, logger: logger}
}

// TrainingCompleted delivers the run outcome to the webhook, if configured.
func (w Webhook) TrainingCompleted(ctx context.Context, run domain.TrainingRun) {
	if w.url == "" {
		return
	}

	payload := trainingCompletedPayload{
		RunID:      run.ID.String(),
		State:      string(run.State),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Error:      run.Error,
	}
	if run.Metrics != nil {
		payload.Metrics = &metricsPayload{
			MacroAccuracy: run.Metrics.MacroAccuracy,
			MicroAccuracy: run.Metrics.MicroAccuracy,
			LogLoss:       run.Metrics.LogLoss,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		w.logger.Printf("Webhook: failed to encode training payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		w.logger.Printf("Webhook: failed to build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Printf("Webhook: delivery failed: %v", err)
		return
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		w.logger.Printf("Webhook: delivery returned status %d", resp.StatusCode)
	}
}

// InitWebhook is a Symbiont initializer for the training webhook.
type InitWebhook struct {
	URL        string       `config:"TRAINING_WEBHOOK_URL" default:""`
	Logger     *log.Logger  `resolve:""`
	HTTPClient *http.Client `resolve:""`
}

// Initialize registers the Webhook in the dependency container.
func (iw InitWebhook) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TrainingNotifier](NewWebhook(iw.URL, iw.HTTPClient, iw.Logger))
	return ctx, nil
}
