package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/repository"
	"github.com/dealspro/dealspro_api/internal/sse"
	"github.com/dealspro/dealspro_api/internal/utils"
	"github.com/dealspro/dealspro_api/internal/validation"
)

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// LeadService handles the public lead forms and their admin review.
type LeadService struct {
	brands      *repository.BrandSubmissionRepository
	influencers *repository.InfluencerApplicationRepository
	notifier    sse.Notifier
}

// NewLeadService constructs a LeadService.
func NewLeadService(brands *repository.BrandSubmissionRepository, influencers *repository.InfluencerApplicationRepository, notifier sse.Notifier) *LeadService {
	if notifier == nil {
		notifier = sse.NopNotifier{}
	}
	return &LeadService{brands: brands, influencers: influencers, notifier: notifier}
}

// SubmitBrand validates and stores a brand submission as pending.
// Nothing is stored when validation fails.
func (s *LeadService) SubmitBrand(ctx context.Context, form validation.BrandForm) (*models.BrandSubmission, error) {
	if errs := validation.BrandSchema.Validate(form.Values()); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	v := validation.BrandSchema.Normalize(form.Values())

	sub, err := s.brands.Create(ctx, models.BrandSubmission{
		CompanyName:        v["companyName"],
		ContactName:        v["contactName"],
		Email:              v["email"],
		Phone:              v["phone"],
		Website:            v["website"],
		ProductName:        v["productName"],
		ProductCategory:    v["productCategory"],
		ProductPrice:       v["productPrice"],
		ProductURL:         v["productUrl"],
		ProductDescription: v["productDescription"],
		ReviewType:         v["reviewType"],
		Budget:             v["budget"],
		AdditionalInfo:     v["additionalInfo"],
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("lead_id", sub.ID).Str("company", sub.CompanyName).Msg("Brand submission received")
	s.notifier.NotifyLeadSubmitted(models.LeadKindBrand, sub.ID)
	return sub, nil
}

// SubmitInfluencer validates and stores an influencer application as pending.
// Nothing is stored when validation fails.
func (s *LeadService) SubmitInfluencer(ctx context.Context, form validation.InfluencerForm) (*models.InfluencerApplication, error) {
	if errs := validation.InfluencerSchema.Validate(form.Values()); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	v := validation.InfluencerSchema.Normalize(form.Values())

	app, err := s.influencers.Create(ctx, models.InfluencerApplication{
		FullName:  v["fullName"],
		Email:     v["email"],
		Phone:     v["phone"],
		Instagram: v["instagram"],
		YouTube:   v["youtube"],
		Twitter:   v["twitter"],
		Niche:     v["niche"],
		Followers: v["followers"],
		About:     v["about"],
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("lead_id", app.ID).Str("niche", app.Niche).Msg("Influencer application received")
	s.notifier.NotifyLeadSubmitted(models.LeadKindInfluencer, app.ID)
	return app, nil
}

// Approve moves a pending lead to approved.
func (s *LeadService) Approve(ctx context.Context, kind models.LeadKind, id string) (*models.LeadEntry, error) {
	return s.SetStatus(ctx, kind, id, models.LeadApproved)
}

// Reject moves a pending lead to rejected.
func (s *LeadService) Reject(ctx context.Context, kind models.LeadKind, id string) (*models.LeadEntry, error) {
	return s.SetStatus(ctx, kind, id, models.LeadRejected)
}

// SetStatus changes the review state of a lead. Returns
// utils.ErrInvalidTransition when the move is not allowed and
// utils.ErrRecordNotFound when the lead does not exist.
func (s *LeadService) SetStatus(ctx context.Context, kind models.LeadKind, id string, status models.LeadStatus) (*models.LeadEntry, error) {
	var entry models.LeadEntry
	switch kind {
	case models.LeadKindBrand:
		sub, err := s.brands.SetStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		entry = models.LeadEntry{Kind: kind, Brand: sub}
	case models.LeadKindInfluencer:
		app, err := s.influencers.SetStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		entry = models.LeadEntry{Kind: kind, Influencer: app}
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnknownLeadKind, kind)
	}

	log.Info().Str("kind", string(kind)).Str("lead_id", id).Str("status", string(status)).Msg("Lead status changed")
	s.notifier.NotifyLeadStatusChanged(kind, id, status)
	return &entry, nil
}

// Delete removes a lead in any state.
func (s *LeadService) Delete(ctx context.Context, kind models.LeadKind, id string) error {
	var (
		removed bool
		err     error
	)
	switch kind {
	case models.LeadKindBrand:
		removed, err = s.brands.Delete(ctx, id)
	case models.LeadKindInfluencer:
		removed, err = s.influencers.Delete(ctx, id)
	default:
		return fmt.Errorf("%w: %q", utils.ErrUnknownLeadKind, kind)
	}
	if err != nil {
		return err
	}
	if !removed {
		return utils.ErrRecordNotFound
	}

	log.Info().Str("kind", string(kind)).Str("lead_id", id).Msg("Lead deleted")
	return nil
}

// ListBrands returns brand submissions, optionally only those in status.
// An empty status returns all of them.
func (s *LeadService) ListBrands(ctx context.Context, status models.LeadStatus) ([]models.BrandSubmission, error) {
	subs, err := s.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return subs, nil
	}
	out := make([]models.BrandSubmission, 0, len(subs))
	for _, sub := range subs {
		if sub.Status == status {
			out = append(out, sub)
		}
	}
	return out, nil
}

// ListInfluencers returns influencer applications, optionally only those in status.
func (s *LeadService) ListInfluencers(ctx context.Context, status models.LeadStatus) ([]models.InfluencerApplication, error) {
	apps, err := s.influencers.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return apps, nil
	}
	out := make([]models.InfluencerApplication, 0, len(apps))
	for _, app := range apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

// Inbox merges both lead kinds into one list, newest submission first.
func (s *LeadService) Inbox(ctx context.Context, status models.LeadStatus) ([]models.LeadEntry, error) {
	subs, err := s.ListBrands(ctx, status)
	if err != nil {
		return nil, err
	}
	apps, err := s.ListInfluencers(ctx, status)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeadEntry, 0, len(subs)+len(apps))
	for i := range subs {
		entries = append(entries, models.LeadEntry{Kind: models.LeadKindBrand, Brand: &subs[i]})
	}
	for i := range apps {
		entries = append(entries, models.LeadEntry{Kind: models.LeadKindInfluencer, Influencer: &apps[i]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt().After(entries[j].CreatedAt())
	})
	return entries, nil
}

// PendingCounts returns the number of pending leads per kind.
func (s *LeadService) PendingCounts(ctx context.Context) (map[models.LeadKind]int, error) {
	subs, err := s.ListBrands(ctx, models.LeadPending)
	if err != nil {
		return nil, err
	}
	apps, err := s.ListInfluencers(ctx, models.LeadPending)
	if err != nil {
		return nil, err
	}
	return map[models.LeadKind]int{
		models.LeadKindBrand:      len(subs),
		models.LeadKindInfluencer: len(apps),
	}, nil
}
