package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/storage"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// checkTransition guards every admin status change.
func checkTransition(from, to models.LeadStatus) error {
	if !models.IsTransitionAllowed(from, to) {
		return fmt.Errorf("%w: %s -> %s", utils.ErrInvalidTransition, from, to)
	}
	return nil
}

// BrandSubmissionRepository provides data access for brand product submissions.
type BrandSubmissionRepository struct {
	col *Collection[models.BrandSubmission]
	now func() time.Time
}

// NewBrandSubmissionRepository creates a BrandSubmissionRepository.
func NewBrandSubmissionRepository(kv storage.KeyValueStore) *BrandSubmissionRepository {
	return &BrandSubmissionRepository{
		col: NewCollection[models.BrandSubmission](kv, KeyBrandSubmissions, Append, nil),
		now: time.Now,
	}
}

// List returns submissions in submission order.
func (r *BrandSubmissionRepository) List(ctx context.Context) ([]models.BrandSubmission, error) {
	return r.col.Load(ctx)
}

// GetByID finds a submission by id.
func (r *BrandSubmissionRepository) GetByID(ctx context.Context, id string) (*models.BrandSubmission, error) {
	s, found, err := r.col.Find(ctx, func(s models.BrandSubmission) bool { return s.ID == id })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrRecordNotFound
	}
	return &s, nil
}

// Create stamps id, createdAt and pending status and appends the submission.
func (r *BrandSubmissionRepository) Create(ctx context.Context, sub models.BrandSubmission) (*models.BrandSubmission, error) {
	sub.ID = utils.GenerateID()
	sub.CreatedAt = r.now().UTC()
	sub.Status = models.LeadPending

	created, err := r.col.Insert(ctx, sub)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SetStatus moves a submission to status if the transition is allowed.
func (r *BrandSubmissionRepository) SetStatus(ctx context.Context, id string, status models.LeadStatus) (*models.BrandSubmission, error) {
	updated, err := r.col.Update(ctx, id, func(s models.BrandSubmission) (models.BrandSubmission, error) {
		if err := checkTransition(s.Status, status); err != nil {
			return s, err
		}
		s.Status = status
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a submission regardless of status.
func (r *BrandSubmissionRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(ctx, id)
}

// InfluencerApplicationRepository provides data access for influencer applications.
type InfluencerApplicationRepository struct {
	col *Collection[models.InfluencerApplication]
	now func() time.Time
}

// NewInfluencerApplicationRepository creates an InfluencerApplicationRepository.
func NewInfluencerApplicationRepository(kv storage.KeyValueStore) *InfluencerApplicationRepository {
	return &InfluencerApplicationRepository{
		col: NewCollection[models.InfluencerApplication](kv, KeyInfluencerApplications, Append, nil),
		now: time.Now,
	}
}

// List returns applications in submission order.
func (r *InfluencerApplicationRepository) List(ctx context.Context) ([]models.InfluencerApplication, error) {
	return r.col.Load(ctx)
}

// GetByID finds an application by id.
func (r *InfluencerApplicationRepository) GetByID(ctx context.Context, id string) (*models.InfluencerApplication, error) {
	a, found, err := r.col.Find(ctx, func(a models.InfluencerApplication) bool { return a.ID == id })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrRecordNotFound
	}
	return &a, nil
}

// Create stamps id, createdAt and pending status and appends the application.
func (r *InfluencerApplicationRepository) Create(ctx context.Context, app models.InfluencerApplication) (*models.InfluencerApplication, error) {
	app.ID = utils.GenerateID()
	app.CreatedAt = r.now().UTC()
	app.Status = models.LeadPending

	created, err := r.col.Insert(ctx, app)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SetStatus moves an application to status if the transition is allowed.
func (r *InfluencerApplicationRepository) SetStatus(ctx context.Context, id string, status models.LeadStatus) (*models.InfluencerApplication, error) {
	updated, err := r.col.Update(ctx, id, func(a models.InfluencerApplication) (models.InfluencerApplication, error) {
		if err := checkTransition(a.Status, status); err != nil {
			return a, err
		}
		a.Status = status
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an application regardless of status.
func (r *InfluencerApplicationRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(ctx, id)
}
