package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/task/dto"
	"zeros.dev/launchpad/internal/modules/task/repository"
	"zeros.dev/launchpad/internal/modules/task/service"
	userRepo "zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
)

type countsStub map[int]int

func (c countsStub) CountByTask(ctx context.Context) (map[int]int, error) {
	return c, nil
}

func setup(t *testing.T, tasks []entity.Task, counts countsStub) service.TaskService {
	t.Helper()

	store := content.NewStore(t.TempDir())
	require.NoError(t, content.WriteList(store, "users", []entity.User{
		{ID: 5, Name: "Ada Lovelace", Email: "ada@zeros.dev", Role: entity.RoleApprentice},
	}))
	require.NoError(t, content.WriteList(store, "tasks", tasks))

	return service.NewTaskService(repository.NewTaskRepository(store), userRepo.NewUserRepository(store), counts)
}

func TestGetAllTasksDerivesOverdue(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)
	svc := setup(t, []entity.Task{
		{ID: 101, Title: "Research", Status: entity.TaskNotStarted, ETA: past, AssigneeID: 5},
		{ID: 102, Title: "Prototype", Status: entity.TaskInProgress, ETA: future, AssigneeID: 5},
		{ID: 103, Title: "Writeup", Status: entity.TaskSubmitted, ETA: past, AssigneeID: 5},
	}, countsStub{103: 1})

	all, err := svc.GetAllTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, entity.TaskOverdue, all[0].EffectiveStatus)
	assert.Equal(t, entity.TaskNotStarted, all[0].Status, "stored status untouched")
	assert.Equal(t, entity.TaskInProgress, all[1].EffectiveStatus)
	assert.Equal(t, entity.TaskSubmitted, all[2].EffectiveStatus, "submitted never reads overdue")
	assert.Equal(t, 1, all[2].SubmissionCount)
}

func TestCreateTaskAssignsSequentialID(t *testing.T) {
	svc := setup(t, nil, countsStub{})
	ctx := context.Background()

	first, err := svc.CreateTask(ctx, dto.CreateTaskInput{
		Title: "Research", Phase: "Phase 1", Objective: "Learn the stack",
		ETA: time.Now().Add(time.Hour), AssigneeID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 101, first.ID)
	assert.Equal(t, entity.TaskNotStarted, first.Status)

	second, err := svc.CreateTask(ctx, dto.CreateTaskInput{
		Title: "Prototype", Phase: "Phase 1", Objective: "Build it",
		ETA: time.Now().Add(time.Hour), AssigneeID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 102, second.ID)
}

func TestCreateTaskRejectsUnknownAssignee(t *testing.T) {
	svc := setup(t, nil, countsStub{})

	_, err := svc.CreateTask(context.Background(), dto.CreateTaskInput{
		Title: "Research", Phase: "Phase 1", Objective: "Learn",
		ETA: time.Now(), AssigneeID: 99,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateTaskRejectsOverdueStatus(t *testing.T) {
	svc := setup(t, []entity.Task{
		{ID: 101, Title: "Research", Status: entity.TaskNotStarted, ETA: time.Now(), AssigneeID: 5},
	}, countsStub{})

	_, err := svc.UpdateTask(context.Background(), 101, dto.UpdateTaskInput{Status: string(entity.TaskOverdue)})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	updated, err := svc.UpdateTask(context.Background(), 101, dto.UpdateTaskInput{Status: string(entity.TaskInProgress)})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskInProgress, updated.Status)
}

func TestDeleteTask(t *testing.T) {
	svc := setup(t, []entity.Task{
		{ID: 101, Title: "Research", Status: entity.TaskNotStarted, ETA: time.Now(), AssigneeID: 5},
	}, countsStub{})
	ctx := context.Background()

	require.NoError(t, svc.DeleteTask(ctx, 101))
	_, err := svc.GetTaskByID(ctx, 101)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, 101), apperror.ErrNotFound)
}
