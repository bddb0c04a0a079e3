package repository

import (
	"context"
	"time"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/storage"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// DealRepository provides data access for the deals collection.
type DealRepository struct {
	col *Collection[models.Deal]
	now func() time.Time
}

// NewDealRepository creates a DealRepository. An empty store is seeded with sample deals.
func NewDealRepository(kv storage.KeyValueStore) *DealRepository {
	return &DealRepository{
		col: NewCollection(kv, KeyDeals, Prepend, SampleDeals),
		now: time.Now,
	}
}

// List returns every deal, newest insert first.
func (r *DealRepository) List(ctx context.Context) ([]models.Deal, error) {
	return r.col.Load(ctx)
}

// GetByID finds a deal by id.
func (r *DealRepository) GetByID(ctx context.Context, id string) (*models.Deal, error) {
	return r.findOne(ctx, func(d models.Deal) bool { return d.ID == id })
}

// GetBySlug finds a deal by slug.
func (r *DealRepository) GetBySlug(ctx context.Context, slug string) (*models.Deal, error) {
	return r.findOne(ctx, func(d models.Deal) bool { return d.Slug == slug })
}

func (r *DealRepository) findOne(ctx context.Context, pred func(models.Deal) bool) (*models.Deal, error) {
	d, found, err := r.col.Find(ctx, pred)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrRecordNotFound
	}
	return &d, nil
}

// Create assigns id, slug and createdAt and stores the deal at the front of the collection.
func (r *DealRepository) Create(ctx context.Context, in models.DealInput) (*models.Deal, error) {
	id := utils.GenerateID()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	deal := models.Deal{
		ID:            id,
		Slug:          utils.GenerateSlug(in.Title, id),
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		CurrentPrice:  in.CurrentPrice,
		OriginalPrice: in.OriginalPrice,
		Store:         in.Store,
		Category:      in.Category,
		ProductURL:    in.ProductURL,
		CreatedAt:     r.now().UTC(),
		IsActive:      active,
	}

	created, err := r.col.Insert(ctx, deal)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Patch merges patch over the deal with the given id.
func (r *DealRepository) Patch(ctx context.Context, id string, patch models.DealPatch) (*models.Deal, error) {
	updated, err := r.col.Update(ctx, id, func(d models.Deal) (models.Deal, error) {
		return patch.Apply(d), nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a deal and reports whether it existed.
func (r *DealRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(ctx, id)
}
