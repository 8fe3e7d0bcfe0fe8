package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"driveline/internal/constants"
	"driveline/internal/logger"
	"driveline/internal/mailer"
	"driveline/pkg/errors"
	"driveline/pkg/metrics"
)

// Service runs the submission pipeline after the endpoint has admitted and
// parsed the request: bot check, spam rules, validation, sanitization,
// dispatch. Each stage short-circuits; no side effect happens before all
// checks pass.
type Service struct {
	sender mailer.Sender
	filter *RuleFilter
	log    logger.Logger
}

type ServiceOption func(*Service)

func WithSpamFilter(filter *RuleFilter) ServiceOption {
	return func(s *Service) {
		s.filter = filter
	}
}

func NewService(sender mailer.Sender, log logger.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		sender: sender,
		log:    log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	// Bots get the same thank-you as everyone else. Revealing detection
	// would just teach the sender to drop the honeypot.
	if IsBot(req) {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusBot).Inc()
		s.log.InfowCtx(ctx, "Honeypot triggered, dropping submission silently")
		return &Result{Message: constants.ThankYouMessage}, nil
	}

	if matched, rule, err := s.filter.Match(ctx, req); err != nil {
		// Rule trouble must not block real customers.
		s.log.WarnwCtx(ctx, "Spam rule evaluation failed, letting submission through", "error", err)
	} else if matched {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusSpamFiltered).Inc()
		s.log.InfowCtx(ctx, "Spam rule matched, dropping submission silently", "rule", rule)
		return &Result{Message: constants.ThankYouMessage}, nil
	}

	if missing := MissingFields(req); len(missing) > 0 {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		return nil, errors.ErrMissingField.
			WithMessage(fmt.Sprintf("Please fill in the required fields: %s.", strings.Join(missing, ", "))).
			WithDetail("fields", missing)
	}

	if !ValidEmail(req.Email) {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		return nil, errors.ErrInvalidEmail
	}

	fields := s.sanitizeAndResolve(req)

	if !s.sender.Configured() {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusNotConfigured).Inc()
		s.log.ErrorwCtx(ctx, "Email provider not configured, inquiry dropped")
		return nil, errors.ErrNotConfigured
	}

	start := time.Now()
	messageID, err := s.sender.Send(ctx, fields)
	elapsed := float64(time.Since(start).Milliseconds())

	if err != nil {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusProviderError).Inc()
		metrics.DispatchDuration.WithLabelValues("error").Observe(elapsed)
		s.log.ErrorwCtx(ctx, "Email dispatch failed", "error", err)
		if errors.IsNotConfigured(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrProvider)
	}

	metrics.InquiriesTotal.WithLabelValues(metrics.StatusAccepted).Inc()
	metrics.DispatchDuration.WithLabelValues("success").Observe(elapsed)
	s.log.InfowCtx(ctx, "Inquiry dispatched", "provider_message_id", messageID, "vehicle", fields.Vehicle)

	return &Result{
		MessageID: messageID,
		Message:   constants.ThankYouMessage,
	}, nil
}

// Configured is surfaced for the health check.
func (s *Service) Configured() bool {
	return s.sender.Configured()
}

func (s *Service) sanitizeAndResolve(req SubmitRequest) mailer.Fields {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = constants.DefaultMessage
	} else {
		message = Sanitize(message)
	}

	return mailer.Fields{
		Name:    Sanitize(strings.TrimSpace(req.Name)),
		Email:   NormalizeEmail(req.Email),
		Vehicle: ResolveVehicle(req.Vehicle, req.CustomModel),
		Country: Sanitize(strings.TrimSpace(req.Country)),
		Message: message,
	}
}
