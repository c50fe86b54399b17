package service_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/submission/dto"
	submissionRepo "zeros.dev/launchpad/internal/modules/submission/repository"
	"zeros.dev/launchpad/internal/modules/submission/service"
	taskRepo "zeros.dev/launchpad/internal/modules/task/repository"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
	"zeros.dev/launchpad/pkg/storage"
)

type fixture struct {
	service     service.SubmissionService
	submissions submissionRepo.SubmissionRepository
	tasks       taskRepo.TaskRepository
	publicDir   string
}

func setup(t *testing.T, tasks []entity.Task) *fixture {
	t.Helper()

	store := content.NewStore(t.TempDir())
	require.NoError(t, content.WriteList(store, "tasks", tasks))
	require.NoError(t, content.WriteList(store, "submissions", []entity.Submission{}))

	publicDir := t.TempDir()
	fileStorage, err := storage.NewLocalStorage(publicDir)
	require.NoError(t, err)

	subs := submissionRepo.NewSubmissionRepository(store)
	tr := taskRepo.NewTaskRepository(store)

	return &fixture{
		service:     service.NewSubmissionService(subs, tr, fileStorage),
		submissions: subs,
		tasks:       tr,
		publicDir:   publicDir,
	}
}

func apprentice() *entity.User {
	return &entity.User{ID: 5, Name: "Ada Lovelace", Email: "ada@zeros.dev", Role: entity.RoleApprentice}
}

func upload(name, body string) *dto.UploadFile {
	return &dto.UploadFile{
		Reader:   strings.NewReader(body),
		FileName: name,
		Size:     int64(len(body)),
	}
}

func (f *fixture) storedPath(fileURL string) string {
	return filepath.Join(f.publicDir, filepath.FromSlash(strings.TrimPrefix(fileURL, "/")))
}

func TestSubmitRequiresFile(t *testing.T) {
	f := setup(t, []entity.Task{{ID: 101, Title: "Research", Status: entity.TaskNotStarted, AssigneeID: 5}})

	_, err := f.service.Submit(context.Background(), 101, apprentice(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSubmitUnknownTask(t *testing.T) {
	f := setup(t, nil)

	_, err := f.service.Submit(context.Background(), 999, apprentice(), upload("report.pdf", "content"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSubmitCreatesSubmissionAndFlipsTask(t *testing.T) {
	f := setup(t, []entity.Task{{ID: 101, Title: "Research", Status: entity.TaskNotStarted, AssigneeID: 5}})
	ctx := context.Background()

	sub, err := f.service.Submit(ctx, 101, apprentice(), upload("my report.pdf", "content"))
	require.NoError(t, err)

	assert.Equal(t, 1, sub.ID)
	assert.Equal(t, entity.SubmissionPendingScore, sub.Status)
	assert.Equal(t, "Research", sub.TaskTitle)
	assert.Equal(t, "Ada Lovelace", sub.AssigneeName)
	assert.True(t, strings.HasPrefix(sub.FileURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(sub.FileURL, "-my_report.pdf"))
	assert.FileExists(t, f.storedPath(sub.FileURL))

	task, err := f.tasks.FindByID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskSubmitted, task.Status)
}

func TestResubmitResetsScoredSubmission(t *testing.T) {
	f := setup(t, []entity.Task{{ID: 101, Title: "Research", Status: entity.TaskNotStarted, AssigneeID: 5}})
	ctx := context.Background()
	user := apprentice()

	first, err := f.service.Submit(ctx, 101, user, upload("v1.pdf", "first draft"))
	require.NoError(t, err)

	_, err = f.service.Score(ctx, first.ID, entity.ScoreBreakdown{Depth: 10, Relevance: 10, Applicability: 10, Novelty: 10, Packaging: 10}, "Grace Hopper")
	require.NoError(t, err)

	// Holding the millisecond apart keeps the stored names distinct.
	time.Sleep(2 * time.Millisecond)

	second, err := f.service.Submit(ctx, 101, user, upload("v2.pdf", "second draft"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-submission updates in place")
	assert.Equal(t, entity.SubmissionPendingScore, second.Status)
	assert.Nil(t, second.Scores)
	assert.Nil(t, second.Score)
	assert.Empty(t, second.Scorer)
	assert.NotEqual(t, first.FileURL, second.FileURL)

	assert.NoFileExists(t, f.storedPath(first.FileURL), "previous file is removed")
	assert.FileExists(t, f.storedPath(second.FileURL))

	all, err := f.submissions.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "no duplicate record for the pair")
}

func TestScoreUnknownSubmission(t *testing.T) {
	f := setup(t, nil)

	_, err := f.service.Score(context.Background(), 42, entity.ScoreBreakdown{}, "Grace Hopper")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSubmitThenScorePropagatesToTask(t *testing.T) {
	f := setup(t, []entity.Task{{ID: 101, Title: "Research", Status: entity.TaskNotStarted, AssigneeID: 5}})
	ctx := context.Background()

	sub, err := f.service.Submit(ctx, 101, apprentice(), upload("report.pdf", "content"))
	require.NoError(t, err)

	task, err := f.tasks.FindByID(ctx, 101)
	require.NoError(t, err)
	require.Equal(t, entity.TaskSubmitted, task.Status)

	scored, err := f.service.Score(ctx, sub.ID, entity.ScoreBreakdown{Depth: 8, Relevance: 7, Applicability: 9, Novelty: 6, Packaging: 10}, "Grace Hopper")
	require.NoError(t, err)

	assert.Equal(t, entity.SubmissionScored, scored.Status)
	require.NotNil(t, scored.Score)
	assert.Equal(t, 80, *scored.Score)
	assert.Equal(t, "Grace Hopper", scored.Scorer)

	task, err = f.tasks.FindByID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskScored, task.Status)
	require.NotNil(t, task.Score)
	assert.Equal(t, 80, *task.Score)
}

func TestCountByTask(t *testing.T) {
	f := setup(t, []entity.Task{
		{ID: 101, Title: "Research", Status: entity.TaskNotStarted, AssigneeID: 5},
		{ID: 102, Title: "Prototype", Status: entity.TaskNotStarted, AssigneeID: 6},
	})
	ctx := context.Background()

	_, err := f.service.Submit(ctx, 101, apprentice(), upload("a.pdf", "a"))
	require.NoError(t, err)

	other := &entity.User{ID: 6, Name: "Brian Kernighan", Role: entity.RoleApprentice}
	_, err = f.service.Submit(ctx, 102, other, upload("b.pdf", "b"))
	require.NoError(t, err)

	counts, err := f.submissions.CountByTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{101: 1, 102: 1}, counts)
}
