package catalog

import (
	"context"
	"testing"

	"github.com/purchase-system/backend/internal/domain/catalog"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePartRepo struct {
	parts  map[string]*catalog.Part
	lookup []string
}

func newFakePartRepo(numbers ...string) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[string]*catalog.Part)}
	for _, n := range numbers {
		r.parts[n] = &catalog.Part{NoPart: n}
	}
	return r
}

func (r *fakePartRepo) FindByNoPart(_ context.Context, noPart string) (*catalog.Part, error) {
	r.lookup = append(r.lookup, noPart)
	if p, ok := r.parts[noPart]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePartRepo) Exists(_ context.Context, noPart string) (bool, error) {
	_, ok := r.parts[noPart]
	return ok, nil
}

func (r *fakePartRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Part, error) {
	out := make([]catalog.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePartRepo) Search(_ context.Context, _ string) ([]catalog.Part, error) {
	return nil, nil
}

func (r *fakePartRepo) FindByType(_ context.Context, _ string) ([]catalog.Part, error) {
	return nil, nil
}

func (r *fakePartRepo) DistinctTypes(_ context.Context) ([]string, error) {
	return []string{"Resistor", "Capacitor"}, nil
}

func (r *fakePartRepo) Save(_ context.Context, p *catalog.Part) error {
	cp := *p
	r.parts[p.NoPart] = &cp
	return nil
}

func (r *fakePartRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.parts)), nil
}

func TestGetNormalizesLookupKey(t *testing.T) {
	repo := newFakePartRepo("CAFE-123")
	svc := NewPartService(repo)

	p, err := svc.Get(context.Background(), "  café-123 ")
	require.NoError(t, err)
	assert.Equal(t, "CAFE-123", p.NoPart)
	assert.Equal(t, []string{"CAFE-123"}, repo.lookup)
}

func TestGetRejectsEmptyPartNumber(t *testing.T) {
	svc := NewPartService(newFakePartRepo())

	_, err := svc.Get(context.Background(), "   ")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PART_NUMBER", domainErr.Code)
}

func TestListClampsPagination(t *testing.T) {
	svc := NewPartService(newFakePartRepo("R-100", "C-200"))

	page, err := svc.List(context.Background(), shared.Filter{Page: -3, PageSize: 10000})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewPartService(newFakePartRepo())

	_, err := svc.Search(context.Background(), "  ")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUERY", domainErr.Code)
}

func TestTypes(t *testing.T) {
	svc := NewPartService(newFakePartRepo())

	types, err := svc.Types(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Resistor", "Capacitor"}, types)
}
