package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"github.com/teampulse/teampulse-backend/internal/services"
	"gorm.io/gorm"
)

func seedOrgWithUser(t *testing.T, db *gorm.DB) (orgID, userID uuid.UUID) {
	t.Helper()
	orgID = uuid.New()
	userID = uuid.New()
	require.NoError(t, db.Create(&models.Organization{
		ID: orgID, Name: "Acme Inc", Subdomain: "acme-" + orgID.String()[:8],
	}).Error)
	require.NoError(t, db.Create(&models.User{
		ID: userID, FirstName: "Ann", LastName: "Lee",
		Email: userID.String() + "@x.com", Phone: orgID.String()[:10], Password: "x",
	}).Error)
	return orgID, userID
}

func seedProject(t *testing.T, db *gorm.DB, orgID uuid.UUID) uuid.UUID {
	t.Helper()
	svc := services.NewProjectService(db)
	project, err := svc.Create(orgID, &dto.CreateProjectRequest{Name: "Launch"})
	require.NoError(t, err)
	return project.ID
}

func TestTaskCreateAndListByProject(t *testing.T) {
	db := openTestDB(t)
	orgID, userID := seedOrgWithUser(t, db)
	projectID := seedProject(t, db, orgID)
	svc := services.NewTaskService(db, nil)

	task, err := svc.Create(orgID, userID, &dto.CreateTaskRequest{
		Title:         "Write docs",
		ProjectID:     projectID.String(),
		Tags:          []string{"docs", "p1"},
		AttachmentURL: "https://bucket.example/mockup.png",
	})
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusTodo, task.Status)
	require.Equal(t, userID, task.AuthorUserID)

	tasks, err := svc.ListByProject(orgID, projectID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Len(t, tasks[0].Attachments, 1)
	require.Equal(t, "https://bucket.example/mockup.png", tasks[0].Attachments[0].FileURL)
}

func TestTaskCreateRequiresProjectInSameOrg(t *testing.T) {
	db := openTestDB(t)
	orgA, userA := seedOrgWithUser(t, db)
	orgB, _ := seedOrgWithUser(t, db)
	projectB := seedProject(t, db, orgB)
	svc := services.NewTaskService(db, nil)

	// A project belonging to another tenant is invisible, not forbidden
	_, err := svc.Create(orgA, userA, &dto.CreateTaskRequest{
		Title:     "Sneaky",
		ProjectID: projectB.String(),
	})
	require.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestTaskListIsTenantScoped(t *testing.T) {
	db := openTestDB(t)
	orgA, userA := seedOrgWithUser(t, db)
	orgB, _ := seedOrgWithUser(t, db)
	projectA := seedProject(t, db, orgA)
	svc := services.NewTaskService(db, nil)

	_, err := svc.Create(orgA, userA, &dto.CreateTaskRequest{Title: "Only A", ProjectID: projectA.String()})
	require.NoError(t, err)

	tasks, err := svc.ListByProject(orgB, projectA)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskStatusUpdate(t *testing.T) {
	db := openTestDB(t)
	orgID, userID := seedOrgWithUser(t, db)
	projectID := seedProject(t, db, orgID)
	svc := services.NewTaskService(db, nil)

	task, err := svc.Create(orgID, userID, &dto.CreateTaskRequest{Title: "Move me", ProjectID: projectID.String()})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(orgID, task.ID, models.TaskStatusDone)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusDone, updated.Status)

	_, err = svc.UpdateStatus(orgID, uuid.New(), models.TaskStatusDone)
	require.ErrorIs(t, err, services.ErrTaskNotFound)

	_, err = svc.UpdateStatus(orgID, task.ID, "")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestTaskListForUser(t *testing.T) {
	db := openTestDB(t)
	orgID, author := seedOrgWithUser(t, db)
	projectID := seedProject(t, db, orgID)
	svc := services.NewTaskService(db, nil)

	assignee := uuid.New()
	require.NoError(t, db.Create(&models.User{
		ID: assignee, FirstName: "Bob", LastName: "Ray",
		Email: assignee.String() + "@x.com", Phone: assignee.String()[:10], Password: "x",
	}).Error)

	_, err := svc.Create(orgID, author, &dto.CreateTaskRequest{
		Title: "Assigned", ProjectID: projectID.String(), AssignedUserID: assignee.String(),
	})
	require.NoError(t, err)
	_, err = svc.Create(orgID, author, &dto.CreateTaskRequest{Title: "Authored", ProjectID: projectID.String()})
	require.NoError(t, err)

	byAssignee, err := svc.ListForUser(orgID, assignee)
	require.NoError(t, err)
	require.Len(t, byAssignee, 1)

	byAuthor, err := svc.ListForUser(orgID, author)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
}

func TestChecklistLifecycle(t *testing.T) {
	db := openTestDB(t)
	orgID, userID := seedOrgWithUser(t, db)
	projectID := seedProject(t, db, orgID)
	svc := services.NewTaskService(db, nil)

	task, err := svc.Create(orgID, userID, &dto.CreateTaskRequest{Title: "With list", ProjectID: projectID.String()})
	require.NoError(t, err)

	item, err := svc.AddChecklistItem(orgID, task.ID, userID, "Review copy")
	require.NoError(t, err)
	require.False(t, item.Completed)

	items, err := svc.ListChecklist(orgID, task.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	toggled, err := svc.ToggleChecklistItem(orgID, item.ID, true)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	// Another tenant cannot touch the item
	otherOrg, _ := seedOrgWithUser(t, db)
	_, err = svc.ToggleChecklistItem(otherOrg, item.ID, false)
	require.ErrorIs(t, err, services.ErrChecklistItemNotFound)
}

func TestAddComment(t *testing.T) {
	db := openTestDB(t)
	orgID, userID := seedOrgWithUser(t, db)
	projectID := seedProject(t, db, orgID)
	svc := services.NewTaskService(db, nil)

	task, err := svc.Create(orgID, userID, &dto.CreateTaskRequest{Title: "Discuss", ProjectID: projectID.String()})
	require.NoError(t, err)

	comment, err := svc.AddComment(orgID, task.ID, userID, "Looks good")
	require.NoError(t, err)
	require.Equal(t, "Looks good", comment.Text)

	_, err = svc.AddComment(orgID, task.ID, userID, "")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
