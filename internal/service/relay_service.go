package service

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
	"github.com/spec-kit/hr-platform/internal/events"
	"github.com/spec-kit/hr-platform/internal/remote"
)

// RelayService delivers the side effects of a committed dossier write: the
// confirmation email and the beneficiary-change notification to the
// notification service. Both are best-effort; a failure here is logged and
// never rolls back the dossier.
type RelayService struct {
	dispatcher      events.Dispatcher
	remote          *remote.Client
	mailer          Mailer
	notificationURL string
	logger          *zap.Logger
}

// NewRelayService creates the service.
func NewRelayService(dispatcher events.Dispatcher, client *remote.Client, mailer Mailer, collaborators config.CollaboratorConfig, logger *zap.Logger) *RelayService {
	return &RelayService{
		dispatcher:      dispatcher,
		remote:          client,
		mailer:          mailer,
		notificationURL: collaborators.NotificationURL,
		logger:          logger,
	}
}

// RegisterHandlers subscribes to events.
func (s *RelayService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventBeneficiaryChanged, s.handleBeneficiaryChanged)
}

func (s *RelayService) handleBeneficiaryChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.BeneficiaryChangedPayload)
	if !ok {
		s.logger.Error("unexpected payload type", zap.String("event_id", event.ID))
		return nil
	}

	s.sendConfirmationEmail(ctx, event.ID, payload)
	s.notifyInsurer(ctx, event.ID, payload)
	return nil
}

func (s *RelayService) sendConfirmationEmail(ctx context.Context, eventID string, payload events.BeneficiaryChangedPayload) {
	if payload.Email == "" {
		return
	}
	err := s.mailer.Send(ctx, payload.Email, "Confirmation", "Your beneficiary change has been processed.")
	if err != nil {
		s.logger.Error("confirmation email failed",
			zap.String("event_id", eventID),
			zap.Int64("dossier_id", payload.DossierID),
			zap.Error(err))
	}
}

func (s *RelayService) notifyInsurer(ctx context.Context, eventID string, payload events.BeneficiaryChangedPayload) {
	body, err := json.Marshal(map[string]int64{"dossierId": payload.DossierID})
	if err != nil {
		s.logger.Error("notification payload encode failed", zap.Error(err))
		return
	}

	_, err = s.remote.Call(ctx, s.notificationURL+"/beneficiary-change", remote.CallOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
	if err != nil {
		s.logger.Error("beneficiary-change notification failed",
			zap.String("event_id", eventID),
			zap.Int64("dossier_id", payload.DossierID),
			zap.Error(err))
	}
}
