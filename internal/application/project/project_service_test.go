package project

import (
	"context"
	"testing"

	"github.com/purchase-system/backend/internal/domain/project"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	projects  map[string]*project.Project
	purchased map[string]bool // project numbers with purchases
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*project.Project)}
}

func (r *fakeProjectRepo) FindByNoProject(_ context.Context, noProject string) (*project.Project, error) {
	if p, ok := r.projects[noProject]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProjectRepo) Exists(_ context.Context, noProject string) (bool, error) {
	_, ok := r.projects[noProject]
	return ok, nil
}

func (r *fakeProjectRepo) FindAll(_ context.Context, _ shared.Filter) ([]project.Project, error) {
	out := make([]project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) FindActive(_ context.Context) ([]project.Project, error) {
	var out []project.Project
	for _, p := range r.projects {
		if p.IsActive() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindWithPurchases(_ context.Context) ([]project.Project, error) {
	var out []project.Project
	for no, p := range r.projects {
		if r.purchased[no] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Search(_ context.Context, _ string) ([]project.Project, error) {
	return nil, nil
}

func (r *fakeProjectRepo) Save(_ context.Context, p *project.Project) error {
	cp := *p
	r.projects[p.NoProject] = &cp
	return nil
}

func TestCreateProject(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	p, err := svc.Create(context.Background(), "  ABC-1  ", "Conveyor line")
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", p.NoProject)
	assert.Equal(t, "Conveyor line", p.Name)
	assert.Equal(t, project.ProjectStatusActive, p.Status)
}

func TestCreateProjectDuplicate(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	_, err := svc.Create(context.Background(), "ABC-1", "First")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "ABC-1", "Second")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestCreateProjectEmptyNumber(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.Create(context.Background(), "   ", "Nameless")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PROJECT_NUMBER", domainErr.Code)
}

func TestCloseProject(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	_, err := svc.Create(context.Background(), "ABC-1", "Conveyor line")
	require.NoError(t, err)

	p, err := svc.Close(context.Background(), "ABC-1")
	require.NoError(t, err)
	assert.Equal(t, project.ProjectStatusClosed, p.Status)

	// Closing twice is rejected
	_, err = svc.Close(context.Background(), "ABC-1")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_CLOSED", domainErr.Code)
}

func TestCloseUnknownProject(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.Close(context.Background(), "GHOST")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.Search(context.Background(), "   ")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUERY", domainErr.Code)
}

func TestListActiveExcludesClosed(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	_, err := svc.Create(context.Background(), "ABC-1", "Open one")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "ABC-2", "Closed one")
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), "ABC-2")
	require.NoError(t, err)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "ABC-1", active[0].NoProject)
}

func TestListWithPurchases(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	_, err := svc.Create(context.Background(), "ABC-1", "With orders")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "ABC-2", "Still quoting")
	require.NoError(t, err)
	repo.purchased = map[string]bool{"ABC-1": true}

	projects, err := svc.ListWithPurchases(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "ABC-1", projects[0].NoProject)
}
