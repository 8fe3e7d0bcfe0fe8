package mailer

import (
	"context"
	stderrors "errors"

	"github.com/sony/gobreaker"

	"driveline/pkg/circuitbreaker"
	"driveline/pkg/errors"
)

// BreakerSender stops hammering the provider while it is known to be down. An
// open breaker reports a provider failure immediately, which the endpoint maps
// to the same alternate-contact suggestion as a failed send.
type BreakerSender struct {
	inner   Sender
	breaker *circuitbreaker.Wrapper
}

func NewBreakerSender(inner Sender, breaker *circuitbreaker.Wrapper) *BreakerSender {
	return &BreakerSender{
		inner:   inner,
		breaker: breaker,
	}
}

func (s *BreakerSender) Configured() bool {
	return s.inner.Configured()
}

func (s *BreakerSender) Send(ctx context.Context, f Fields) (string, error) {
	result, err := s.breaker.ExecuteWithContext(ctx, func() (interface{}, error) {
		return s.inner.Send(ctx, f)
	})
	s.breaker.RecordRequest(err == nil)

	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", errors.ErrProvider.WithCause(err)
		}
		return "", err
	}

	id, _ := result.(string)
	return id, nil
}
