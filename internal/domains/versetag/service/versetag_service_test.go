package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/domains/versetag"
)

type fakeProjectService struct {
	key project.ProjectKey
}

func (f *fakeProjectService) CreateProject(context.Context, int64, project.CreateProjectRequest) (*project.Project, error) {
	panic("not used")
}

func (f *fakeProjectService) ListProjectsForUser(context.Context, int64) ([]project.ProjectView, error) {
	panic("not used")
}

func (f *fakeProjectService) GetProject(_ context.Context, key project.ProjectKey) (*project.Project, error) {
	if key != f.key {
		return nil, project.ErrProjectNotFound
	}
	return &project.Project{Key: key, Name: "p"}, nil
}

// fakeVerseTagRepository allocates verse_tag_ids per verse, like the store.
type fakeVerseTagRepository struct {
	tags map[versetag.VerseTagKey]*versetag.VerseTag
}

func newFakeVerseTagRepository() *fakeVerseTagRepository {
	return &fakeVerseTagRepository{tags: make(map[versetag.VerseTagKey]*versetag.VerseTag)}
}

func (r *fakeVerseTagRepository) Create(_ context.Context, vt *versetag.VerseTag) (*versetag.VerseTag, error) {
	var maxID int64
	for key := range r.tags {
		if key.VerseID == vt.Key.VerseID && key.VerseTagID > maxID {
			maxID = key.VerseTagID
		}
	}

	created := *vt
	created.Key.VerseTagID = maxID + 1
	created.CreatedAt = time.Now()
	r.tags[created.Key] = &created
	return &created, nil
}

func (r *fakeVerseTagRepository) ListForProject(_ context.Context, key project.ProjectKey) ([]versetag.VerseTag, error) {
	out := make([]versetag.VerseTag, 0)
	for _, vt := range r.tags {
		if vt.Project == key {
			out = append(out, *vt)
		}
	}
	return out, nil
}

var ownedProject = project.ProjectKey{ProjectID: 1, OwnerID: 7}

func newTestService(repo versetag.Repository) versetag.Service {
	return NewVerseTagService(repo, &fakeProjectService{key: ownedProject})
}

func validCreate() versetag.CreateVerseTagRequest {
	return versetag.CreateVerseTagRequest{
		VerseID:        10,
		TagID:          2,
		StartWordIndex: 1,
		EndWordIndex:   3,
	}
}

func TestCreateVerseTagAllocatesIDPerVerse(t *testing.T) {
	svc := newTestService(newFakeVerseTagRepository())
	ctx := context.Background()

	first, err := svc.CreateVerseTag(ctx, ownedProject, validCreate())
	require.NoError(t, err)

	second, err := svc.CreateVerseTag(ctx, ownedProject, validCreate())
	require.NoError(t, err)

	otherVerse := validCreate()
	otherVerse.VerseID = 11
	third, err := svc.CreateVerseTag(ctx, ownedProject, otherVerse)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Key.VerseTagID)
	assert.Equal(t, int64(2), second.Key.VerseTagID)
	assert.Equal(t, int64(1), third.Key.VerseTagID, "each verse starts its own sequence")
}

func TestCreateVerseTagForForeignProjectIsNotFound(t *testing.T) {
	svc := newTestService(newFakeVerseTagRepository())

	foreign := project.ProjectKey{ProjectID: 1, OwnerID: 99}
	_, err := svc.CreateVerseTag(context.Background(), foreign, validCreate())
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestCreateVerseTagRejectsInvertedWordRange(t *testing.T) {
	repo := newFakeVerseTagRepository()
	svc := newTestService(repo)

	req := validCreate()
	req.StartWordIndex = 5
	req.EndWordIndex = 2
	_, err := svc.CreateVerseTag(context.Background(), ownedProject, req)
	require.Error(t, err)
	assert.Empty(t, repo.tags)
}

func TestListVerseTagsVerifiesOwnership(t *testing.T) {
	svc := newTestService(newFakeVerseTagRepository())
	ctx := context.Background()

	_, err := svc.CreateVerseTag(ctx, ownedProject, validCreate())
	require.NoError(t, err)

	tags, err := svc.ListVerseTags(ctx, ownedProject)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	_, err = svc.ListVerseTags(ctx, project.ProjectKey{ProjectID: 1, OwnerID: 99})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}
