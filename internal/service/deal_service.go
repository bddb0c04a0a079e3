package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/catalog"
	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/repository"
	"github.com/dealspro/dealspro_api/internal/sse"
	"github.com/dealspro/dealspro_api/internal/utils"
	"github.com/dealspro/dealspro_api/internal/validation"
)

// DefaultDealImage is used when a deal is created without an image.
const DefaultDealImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop"

// DealService handles admin deal management and the public catalog.
type DealService struct {
	repo         *repository.DealRepository
	notifier     sse.Notifier
	publicOrigin string
}

// NewDealService constructs a DealService.
func NewDealService(repo *repository.DealRepository, notifier sse.Notifier, publicOrigin string) *DealService {
	if notifier == nil {
		notifier = sse.NopNotifier{}
	}
	return &DealService{repo: repo, notifier: notifier, publicOrigin: publicOrigin}
}

// CatalogQuery narrows and orders the public deal list.
type CatalogQuery struct {
	Category string
	Store    models.Store
	Sort     catalog.SortKey
}

// DealDetail is a deal with the figures shown on its public page.
type DealDetail struct {
	models.Deal
	DiscountPercent int     `json:"discountPercent"`
	Savings         float64 `json:"savings"`
	ShareURL        string  `json:"shareUrl"`
}

func invalidDeal(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", utils.ErrInvalidDeal, fmt.Sprintf(format, args...))
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalidDeal("title is required")
	}
	return nil
}

func validateProductURL(u string) error {
	if !validation.IsHTTPURL(u) {
		return invalidDeal("productUrl must be an absolute http(s) URL")
	}
	return nil
}

func validatePrice(field string, v float64) error {
	if v < 0 {
		return invalidDeal("%s must not be negative", field)
	}
	return nil
}

func validateStore(s models.Store) error {
	if _, err := models.ParseStore(string(s)); err != nil {
		return invalidDeal("%v", err)
	}
	return nil
}

func normalizeInput(in models.DealInput) models.DealInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.ProductURL = strings.TrimSpace(in.ProductURL)
	in.Category = strings.TrimSpace(in.Category)
	if in.ImageURL == "" {
		in.ImageURL = DefaultDealImage
	}
	if in.Store == "" {
		in.Store = models.StoreAmazon
	}
	if in.Category == "" {
		in.Category = "Other"
	}
	return in
}

// Create validates and stores a new deal.
func (s *DealService) Create(ctx context.Context, in models.DealInput) (*models.Deal, error) {
	in = normalizeInput(in)

	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateProductURL(in.ProductURL); err != nil {
		return nil, err
	}
	if err := validatePrice("currentPrice", in.CurrentPrice); err != nil {
		return nil, err
	}
	if err := validatePrice("originalPrice", in.OriginalPrice); err != nil {
		return nil, err
	}
	if err := validateStore(in.Store); err != nil {
		return nil, err
	}

	deal, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info().Str("deal_id", deal.ID).Str("slug", deal.Slug).Msg("Deal created")
	s.notifier.NotifyDealCreated(deal)
	return deal, nil
}

// Update applies a partial update. Only the fields present in patch are validated.
func (s *DealService) Update(ctx context.Context, id string, patch models.DealPatch) (*models.Deal, error) {
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if err := validateTitle(t); err != nil {
			return nil, err
		}
		patch.Title = &t
	}
	if patch.ProductURL != nil {
		u := strings.TrimSpace(*patch.ProductURL)
		if err := validateProductURL(u); err != nil {
			return nil, err
		}
		patch.ProductURL = &u
	}
	if patch.CurrentPrice != nil {
		if err := validatePrice("currentPrice", *patch.CurrentPrice); err != nil {
			return nil, err
		}
	}
	if patch.OriginalPrice != nil {
		if err := validatePrice("originalPrice", *patch.OriginalPrice); err != nil {
			return nil, err
		}
	}
	if patch.Store != nil {
		if err := validateStore(*patch.Store); err != nil {
			return nil, err
		}
	}
	if patch.ImageURL != nil && strings.TrimSpace(*patch.ImageURL) == "" {
		img := DefaultDealImage
		patch.ImageURL = &img
	}

	deal, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	log.Info().Str("deal_id", deal.ID).Msg("Deal updated")
	s.notifier.NotifyDealUpdated(deal)
	return deal, nil
}

// Delete removes a deal. Returns utils.ErrRecordNotFound if it does not exist.
func (s *DealService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return utils.ErrRecordNotFound
	}

	log.Info().Str("deal_id", id).Msg("Deal deleted")
	s.notifier.NotifyDealDeleted(id)
	return nil
}

// Get returns a deal by id, active or not.
func (s *DealService) Get(ctx context.Context, id string) (*models.Deal, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll returns every deal for the admin console, most recently added first.
func (s *DealService) ListAll(ctx context.Context) ([]models.Deal, error) {
	return s.repo.List(ctx)
}

// Catalog returns the active deals matching q.
func (s *DealService) Catalog(ctx context.Context, q CatalogQuery) ([]models.Deal, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	deals = catalog.ByCategory(deals, q.Category)
	deals = catalog.ByStore(deals, q.Store)
	return catalog.SortBy(deals, q.Sort), nil
}

// Search returns the active deals matching query, newest first.
func (s *DealService) Search(ctx context.Context, query string) ([]models.Deal, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.SortBy(catalog.Search(deals, strings.TrimSpace(query)), catalog.SortNewest), nil
}

// GetPublic returns the detail page of an active deal. Inactive deals are
// reported as not found.
func (s *DealService) GetPublic(ctx context.Context, slug string) (*DealDetail, error) {
	deal, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !deal.IsActive {
		return nil, utils.ErrRecordNotFound
	}
	return &DealDetail{
		Deal:            *deal,
		DiscountPercent: catalog.DiscountPercent(*deal),
		Savings:         catalog.Savings(*deal),
		ShareURL:        utils.DealURL(s.publicOrigin, deal.Slug),
	}, nil
}

// ShareURL returns the public link of a deal.
func (s *DealService) ShareURL(ctx context.Context, id string) (string, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.URLFor(deal), nil
}

// URLFor builds the public link of deal.
func (s *DealService) URLFor(deal *models.Deal) string {
	return utils.DealURL(s.publicOrigin, deal.Slug)
}

// Stats summarises the collection for the admin dashboard.
func (s *DealService) Stats(ctx context.Context) (catalog.Stats, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return catalog.Stats{}, err
	}
	return catalog.Summarise(deals), nil
}

// Categories returns active deal counts per category.
func (s *DealService) Categories(ctx context.Context) (map[string]int, error) {
	deals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.CategoryCounts(deals), nil
}
