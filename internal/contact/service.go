package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/umerfilms/website/pkg/email"
	"github.com/umerfilms/website/pkg/logger"
)

// Metrics receives pipeline observations. metrics.Contact implements it.
type Metrics interface {
	SubmissionOutcome(outcome string)
	EmailSent(d time.Duration, err error)
}

type noopMetrics struct{}

func (noopMetrics) SubmissionOutcome(string)       {}
func (noopMetrics) EmailSent(time.Duration, error) {}

// Service runs the submission pipeline. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	sender  email.Sender
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
	metrics Metrics
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source for the submission timestamp.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMetrics(m Metrics) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewService(sender email.Sender, cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		sender:  sender,
		cfg:     cfg,
		log:     logger.Discard(),
		now:     time.Now,
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates sub and, when it is acceptable, sends exactly one
// notification email. Every failure is an *Error whose Kind decides the
// client response. The honeypot is checked before anything else and a
// spam submission never reaches the sender.
func (s *Service) Submit(ctx context.Context, sub Submission) (email.Receipt, error) {
	log := s.log.With(logger.Component("contact"))
	log.DebugContext(ctx, "contact submission received", logger.Event("received"))

	if sub.IsSpam() {
		return email.Receipt{}, s.reject(ctx, log, &Error{Kind: KindSpamDetected, Err: ErrSpamDetected})
	}

	res := Validate(sub)
	if !res.Valid() {
		return email.Receipt{}, s.reject(ctx, log, &Error{Kind: res.Kind()})
	}

	if s.sender == nil {
		return email.Receipt{}, s.reject(ctx, log, &Error{Kind: KindUnexpected, Err: ErrNilSender})
	}

	msg, err := Compose(ctx, s.cfg, res.Submission(), s.now())
	if err != nil {
		return email.Receipt{}, s.reject(ctx, log, &Error{Kind: KindUnexpected, Err: err})
	}

	log.DebugContext(ctx, "sending contact notification", logger.Event("sending"))
	start := time.Now()
	// A submission runs to completion even if the client goes away.
	receipt, err := s.sender.Send(context.WithoutCancel(ctx), msg)
	elapsed := time.Since(start)
	s.metrics.EmailSent(elapsed, err)
	if err != nil {
		return email.Receipt{}, s.reject(ctx, log, &Error{Kind: KindDeliveryFailed, Err: err})
	}

	s.metrics.SubmissionOutcome(OutcomeSent)
	log.InfoContext(ctx, "contact notification sent",
		logger.Outcome(OutcomeSent),
		logger.MessageID(receipt.MessageID),
		logger.Duration(elapsed),
	)
	return receipt, nil
}

func (s *Service) reject(ctx context.Context, log *slog.Logger, cerr *Error) error {
	s.metrics.SubmissionOutcome(string(cerr.Kind))

	level := slog.LevelInfo
	if cerr.Kind.Status() >= 500 {
		level = slog.LevelError
	}
	attrs := []slog.Attr{logger.Outcome(string(cerr.Kind))}
	if cerr.Err != nil {
		attrs = append(attrs, logger.Error(cerr.Err))
	}
	log.LogAttrs(ctx, level, "contact submission rejected", attrs...)
	return cerr
}
