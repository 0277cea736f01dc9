// Package contact stores contact-form submissions and relays them by email.
package contact

import (
	"context"
	"fmt"
	"strings"

	contactRepo "cerberus/database/repository/contact"
	"cerberus/models"
	"cerberus/services/notification"

	"go.uber.org/zap"
)

// Result reports the two independent outcomes of a submission.
type Result struct {
	ID       int64 `json:"id"`
	Stored   bool  `json:"stored"`
	Notified bool  `json:"notified"`
}

// Options control where notifications go and how their failure is reported.
type Options struct {
	NotifyTo string
	// StrictNotify makes a failed email fail the whole submission even though
	// the row is already stored.
	StrictNotify bool
}

// Service accepts contact payloads. Each call appends a row and attempts one
// email; nothing is deduplicated.
type Service struct {
	repo   contactRepo.SubmissionRepository
	mailer notification.Mailer
	logger *zap.Logger
	opts   Options
}

func NewService(repo contactRepo.SubmissionRepository, mailer notification.Mailer, logger *zap.Logger, opts Options) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		logger: logger,
		opts:   opts,
	}
}

// Submit validates p, stores it and sends the notification. Validation
// failures return *ValidationError before any side effect. Fields are kept
// as received apart from surrounding whitespace; escaping happens where they
// are rendered as HTML.
func (s *Service) Submit(ctx context.Context, p models.ContactPayload) (*Result, error) {
	sub := models.ContactSubmission{
		Name:          strings.TrimSpace(p.Name),
		Email:         strings.TrimSpace(p.Email),
		ProjectType:   strings.TrimSpace(p.ProjectType),
		PreferredDate: strings.TrimSpace(p.PreferredDate),
		SongLink:      strings.TrimSpace(p.SongLink),
		Notes:         strings.TrimSpace(p.Notes),
		Estimate:      p.Estimate,
	}
	if err := validate(sub); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &sub); err != nil {
		s.logger.Error("contact: store submission", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	res := &Result{ID: sub.ID, Stored: true}
	s.logger.Info("contact: submission stored", zap.Int64("id", sub.ID), zap.String("projectType", sub.ProjectType))

	if err := s.mailer.Send(ctx, notification.ContactEmail(sub, s.opts.NotifyTo)); err != nil {
		s.logger.Error("contact: notification failed", zap.Int64("id", sub.ID), zap.Error(err))
		if s.opts.StrictNotify {
			return res, fmt.Errorf("%w: %w", ErrNotify, err)
		}
		return res, nil
	}
	res.Notified = true
	return res, nil
}

func validate(sub models.ContactSubmission) error {
	var missing []string
	if sub.Name == "" {
		missing = append(missing, "name")
	}
	if sub.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
