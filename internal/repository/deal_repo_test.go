package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/storage"
	"github.com/dealspro/dealspro_api/internal/utils"
)

func TestDealRepository_SeedsSampleDeals(t *testing.T) {
	repo := NewDealRepository(storage.NewMemoryStore())

	deals, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(deals) != 6 {
		t.Fatalf("len(deals) = %d, want 6 sample deals", len(deals))
	}
	for _, d := range deals {
		if !strings.HasSuffix(d.Slug, "-"+d.ID[:6]) {
			t.Errorf("sample slug %q does not end with id prefix %q", d.Slug, d.ID[:6])
		}
		if !d.IsActive {
			t.Errorf("sample deal %q is inactive", d.Title)
		}
	}
}

func TestDealRepository_CreatePrependsAndAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewDealRepository(storage.NewMemoryStore())
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	before, _ := repo.List(ctx)

	d, err := repo.Create(ctx, models.DealInput{
		Title:         "Mi Power Bank 20000mAh",
		CurrentPrice:  1499,
		OriginalPrice: 2199,
		Store:         models.StoreAmazon,
		Category:      "Electronics",
		ProductURL:    "https://www.amazon.in/dp/B0",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if d.ID == "" || d.Slug != utils.GenerateSlug(d.Title, d.ID) {
		t.Errorf("identity not assigned: id %q slug %q", d.ID, d.Slug)
	}
	if !d.CreatedAt.Equal(fixed) || !d.IsActive {
		t.Errorf("createdAt %v isActive %v", d.CreatedAt, d.IsActive)
	}

	after, _ := repo.List(ctx)
	if len(after) != len(before)+1 {
		t.Errorf("size %d -> %d, want +1", len(before), len(after))
	}
	if after[0].ID != d.ID {
		t.Errorf("new deal is not first")
	}
}

func TestDealRepository_CreateRespectsIsActive(t *testing.T) {
	inactive := false
	d, err := NewDealRepository(storage.NewMemoryStore()).Create(context.Background(), models.DealInput{
		Title:    "Hidden",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.IsActive {
		t.Error("IsActive=false input ignored")
	}
}

func TestDealRepository_PatchPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewDealRepository(storage.NewMemoryStore())
	d, _ := repo.Create(ctx, models.DealInput{Title: "Original Title", CurrentPrice: 100, OriginalPrice: 200})

	title := "Completely Different Title"
	price := 150.0
	got, err := repo.Patch(ctx, d.ID, models.DealPatch{Title: &title, CurrentPrice: &price})
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	if got.ID != d.ID || got.Slug != d.Slug || !got.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("identity changed: before %+v after %+v", d, got)
	}
	if got.Title != title || got.CurrentPrice != 150 || got.OriginalPrice != 200 {
		t.Errorf("patch not applied correctly: %+v", got)
	}

	stored, _ := repo.GetByID(ctx, d.ID)
	if stored.Title != title {
		t.Errorf("patch not persisted: %+v", stored)
	}
}

func TestDealRepository_PatchNotFound(t *testing.T) {
	repo := NewDealRepository(storage.NewMemoryStore())
	_, err := repo.Patch(context.Background(), "nope", models.DealPatch{})
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Errorf("Patch(nope) err = %v", err)
	}
}

func TestDealRepository_GetBySlugAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewDealRepository(storage.NewMemoryStore())
	d, _ := repo.Create(ctx, models.DealInput{Title: "Find Me"})

	got, err := repo.GetBySlug(ctx, d.Slug)
	if err != nil || got.ID != d.ID {
		t.Fatalf("GetBySlug = %+v, %v", got, err)
	}

	before, _ := repo.List(ctx)
	removed, err := repo.Delete(ctx, d.ID)
	if err != nil || !removed {
		t.Fatalf("Delete = %v, %v", removed, err)
	}
	after, _ := repo.List(ctx)
	if len(after) != len(before)-1 {
		t.Errorf("size %d -> %d, want -1", len(before), len(after))
	}
	if _, err := repo.GetBySlug(ctx, d.Slug); !errors.Is(err, utils.ErrRecordNotFound) {
		t.Errorf("GetBySlug after delete err = %v", err)
	}
}

func TestDealRepository_TimestampsSurviveStorage(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	repo := NewDealRepository(kv)
	d, _ := repo.Create(ctx, models.DealInput{Title: "Timestamped"})

	// A fresh repository over the same store decodes createdAt into time.Time.
	got, err := NewDealRepository(kv).GetByID(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, d.CreatedAt)
	}
}

func TestDealRepository_CorruptStoreServesStableDefaults(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	_ = kv.Set(ctx, KeyDeals, "[{broken")
	repo := NewDealRepository(kv)

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(first) != 6 || len(second) != 6 || first[0].ID != second[0].ID {
		t.Fatalf("defaults changed between loads: %q vs %q", first[0].ID, second[0].ID)
	}

	got, err := repo.GetBySlug(ctx, first[0].Slug)
	if err != nil {
		t.Fatalf("GetBySlug(%q) error: %v", first[0].Slug, err)
	}
	if got.ID != first[0].ID {
		t.Errorf("GetBySlug id = %q, want %q", got.ID, first[0].ID)
	}
	if raw, _, _ := kv.Get(ctx, KeyDeals); raw != "[{broken" {
		t.Errorf("read overwrote corrupt value with %q", raw)
	}

	title := "Renamed"
	patched, err := repo.Patch(ctx, first[1].ID, models.DealPatch{Title: &title})
	if err != nil {
		t.Fatalf("Patch error: %v", err)
	}
	if patched.Title != title || patched.ID != first[1].ID {
		t.Errorf("Patch = %+v", patched)
	}
	after, _ := repo.List(ctx)
	if len(after) != 6 || after[1].Title != title {
		t.Errorf("patched collection not persisted: %+v", after)
	}
}
