package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/floracart/floracart/internal/platform/httpx"
)

type fakeRepo struct {
	nextID     int64
	categories map[int64]Category

	recounted    []string
	recountedAll int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, categories: map[int64]Category{}}
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]Category, error) {
	out := make([]Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return Category{}, httpx.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, httpx.ErrNotFound
}

func (f *fakeRepo) Create(ctx context.Context, category Category) (Category, error) {
	for _, existing := range f.categories {
		if existing.Slug == category.Slug {
			return Category{}, httpx.ErrDuplicate
		}
	}
	category.ID = f.nextID
	f.nextID++
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, category Category) error {
	if _, ok := f.categories[id]; !ok {
		return httpx.ErrNotFound
	}
	category.ID = id
	f.categories[id] = category
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeRepo) Recount(ctx context.Context, slug string) error {
	f.recounted = append(f.recounted, slug)
	return nil
}

func (f *fakeRepo) RecountAll(ctx context.Context) error {
	f.recountedAll++
	return nil
}

func TestCreateDerivesSlugFromName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Category{
		Name:     "Fleurs Séchées",
		ImageURL: "https://cdn.example.com/dried.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, "fleurs-sechees", created.Slug)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Category{
		Name:     "Wedding Bouquets",
		Slug:     "weddings",
		ImageURL: "https://cdn.example.com/weddings.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, "weddings", created.Slug)
}

func TestCreateValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, Category{ImageURL: "https://cdn.example.com/x.jpg"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(ctx, Category{Name: "Roses"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	require.Empty(t, repo.categories, "rejected categories are never stored")
}

func TestCreateDuplicateSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, Category{Name: "Roses", ImageURL: "https://cdn.example.com/r.jpg"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, Category{Name: "Roses", ImageURL: "https://cdn.example.com/r2.jpg"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestGetRejectsInvalidID(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestRecountDispatch(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Recount(ctx, "bouquets"))
	require.Equal(t, []string{"bouquets"}, repo.recounted)
	require.Zero(t, repo.recountedAll)

	require.NoError(t, svc.Recount(ctx, ""))
	require.Equal(t, 1, repo.recountedAll)
	require.Len(t, repo.recounted, 1)
}
