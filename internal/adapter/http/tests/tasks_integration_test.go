//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	dbadapter "github.com/Hadjerbacha/cetic-ged/internal/adapter/db"
	httpadapter "github.com/Hadjerbacha/cetic-ged/internal/adapter/http"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/dto"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/handlers"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/storage"
	appservice "github.com/Hadjerbacha/cetic-ged/internal/app/service"
	"github.com/Hadjerbacha/cetic-ged/pkg/apierrors"
	"github.com/Hadjerbacha/cetic-ged/pkg/translator"

	"github.com/stretchr/testify/suite"
)

const integrationJwtSecret = "integration-test-secret"

type TasksIntegrationSuite struct {
	IntegrationSuiteBase

	router    *gin.Engine
	uploadDir string
	token     string
	userIDs   []uint64
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	s.uploadDir = s.T().TempDir()
	uploadStore, err := storage.NewUploadStore(s.uploadDir)
	s.Require().NoError(err)

	taskRepository := dbadapter.NewTaskRepository(s.DB)
	userRepository := dbadapter.NewUserRepository(s.DB)
	documentRepository := dbadapter.NewDocumentRepository(s.DB)

	taskService := appservice.NewTaskService(taskRepository, userRepository, uploadStore)
	authService := appservice.NewAuthService(userRepository, integrationJwtSecret, time.Hour)
	userService := appservice.NewUserService(userRepository)
	documentService := appservice.NewDocumentService(documentRepository, uploadStore)

	router := gin.New()
	httpadapter.RegisterRoutes(router, uploadStore.Dir(), integrationJwtSecret, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB),
		Auth:     handlers.NewAuthHandler(authService, userService),
		Task:     handlers.NewTaskHandler(taskService),
		User:     handlers.NewUserHandler(userService),
		Document: handlers.NewDocumentHandler(documentService),
	})
	s.router = router

	s.token = ""
	s.userIDs = nil
	for _, username := range []string{"amina", "karim"} {
		rec := s.doJSON(http.MethodPost, "/api/auth/register",
			fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"secret123"}`, username, username))
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		var created dto.RegisterResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
		s.userIDs = append(s.userIDs, created.User.ID)
	}

	rec := s.doJSON(http.MethodPost, "/api/auth/login", `{"email":"amina@example.com","password":"secret123"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var login dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &login))
	s.Require().NotEmpty(login.Token)
	s.token = login.Token
}

func (s *TasksIntegrationSuite) doJSON(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *TasksIntegrationSuite) doMultipart(method, target string, fields map[string]string, fileName, fileContent string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		s.Require().NoError(writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		s.Require().NoError(err)
		_, err = part.Write([]byte(fileContent))
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return s.do(req)
}

func (s *TasksIntegrationSuite) do(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) listTasks() []dto.TaskItem {
	rec := s.doJSON(http.MethodGet, "/api/tasks", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var tasks []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tasks))
	return tasks
}

func (s *TasksIntegrationSuite) uploadDirEntries() []os.DirEntry {
	entries, err := os.ReadDir(s.uploadDir)
	s.Require().NoError(err)
	return entries
}

func (s *TasksIntegrationSuite) TestCreateTask_StartsPending() {
	rec := s.doMultipart(http.MethodPost, "/api/tasks", map[string]string{
		"title":       "Audit",
		"description": "Quarterly accounts review",
		"due_date":    "2025-01-10",
		"priority":    "Normale",
		"notify":      "false",
	}, "", "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().Equal("pending", created.Status)
	s.Require().Equal("2025-01-10", created.DueDate)
	s.Require().Empty(created.AssignedTo)
	s.Require().Nil(created.FilePath)

	tasks := s.listTasks()
	s.Require().Len(tasks, 1)
	s.Require().Equal(created.ID, tasks[0].ID)
}

func (s *TasksIntegrationSuite) TestAssignTask_Defaults() {
	assignees := fmt.Sprintf("[%d, %d]", s.userIDs[0], s.userIDs[1])
	rec := s.doMultipart(http.MethodPost, "/api/tasks/assign-task", map[string]string{
		"assignment_note": "Review budget with finance",
		"notify":          "true",
		"assigned_to":     assignees,
	}, "", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	s.Require().Equal("Assigned Task", task.Title)
	s.Require().Equal("assigned", task.Status)
	s.Require().Equal("Normale", task.Priority)
	s.Require().Equal(time.Now().AddDate(0, 0, 7).Format("2006-01-02"), task.DueDate)
	s.Require().ElementsMatch([]uint64{s.userIDs[0], s.userIDs[1]}, task.AssignedTo)
	s.Require().NotNil(task.AssignmentNote)
	s.Require().Equal("Review budget with finance", *task.AssignmentNote)
	s.Require().NotNil(task.AssignerName)
	s.Require().Equal("amina", *task.AssignerName)
	s.Require().NotNil(task.AssignedAt)
}

func (s *TasksIntegrationSuite) TestAssignTask_UnknownAssigneeLeavesNothingBehind() {
	assignees := fmt.Sprintf("[%d, 99999]", s.userIDs[0])
	rec := s.doMultipart(http.MethodPost, "/api/tasks/assign-task", map[string]string{
		"assignment_note": "note",
		"assigned_to":     assignees,
	}, "report.pdf", "pdf bytes")
	s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	var jsonErr apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &jsonErr))
	s.Require().Equal("One or more users were not found", jsonErr.ErrDetails.Message)

	s.Require().Empty(s.listTasks(), "no task row is created")
	s.Require().Empty(s.uploadDirEntries(), "no file is stored")
}

func (s *TasksIntegrationSuite) TestChangeStatus() {
	rec := s.doMultipart(http.MethodPost, "/api/tasks", map[string]string{
		"title":    "Audit",
		"due_date": "2025-01-10",
	}, "", "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	patch := fmt.Sprintf("/api/tasks/%d/status", created.ID)
	rec = s.doJSON(http.MethodPatch, patch, `{"status":"completed"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var patched dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &patched))
	s.Require().Equal("completed", patched.Status)

	// Patching to the same status again is a no-op, not an error.
	rec = s.doJSON(http.MethodPatch, patch, `{"status":"completed"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	tasks := s.listTasks()
	s.Require().Len(tasks, 1)
	s.Require().Equal("completed", tasks[0].Status)
}

func (s *TasksIntegrationSuite) TestChangeStatus_UnknownTask() {
	rec := s.doJSON(http.MethodPatch, "/api/tasks/99999/status", `{"status":"completed"}`)
	s.Require().Equal(http.StatusNotFound, rec.Code, rec.Body.String())
}

func (s *TasksIntegrationSuite) TestUpdateTask_SwapsAttachment() {
	rec := s.doMultipart(http.MethodPost, "/api/tasks", map[string]string{
		"title":    "Audit",
		"due_date": "2025-01-10",
	}, "first.pdf", "first version")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotNil(created.FilePath)
	s.Require().Len(s.uploadDirEntries(), 1)

	rec = s.doMultipart(http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), map[string]string{
		"title":    "Audit 2025",
		"due_date": "2025-02-01",
	}, "second.pdf", "second version")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("Audit 2025", updated.Title)
	s.Require().Equal("2025-02-01", updated.DueDate)
	s.Require().NotNil(updated.FilePath)
	s.Require().NotEqual(*created.FilePath, *updated.FilePath)

	entries := s.uploadDirEntries()
	s.Require().Len(entries, 1, "the replaced file is removed from disk")
}

func (s *TasksIntegrationSuite) TestUpdateTask_KeepsAttachmentWithoutNewUpload() {
	rec := s.doMultipart(http.MethodPost, "/api/tasks", map[string]string{
		"title":    "Audit",
		"due_date": "2025-01-10",
	}, "report.pdf", "payload")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.doMultipart(http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), map[string]string{
		"title":    "Audit revised",
		"due_date": "2025-01-10",
	}, "", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().NotNil(updated.FilePath)
	s.Require().Equal(*created.FilePath, *updated.FilePath)
	s.Require().Len(s.uploadDirEntries(), 1)
}

func (s *TasksIntegrationSuite) TestDeleteTask_RemovesAttachment() {
	rec := s.doMultipart(http.MethodPost, "/api/tasks", map[string]string{
		"title":    "Audit",
		"due_date": "2025-01-10",
	}, "report.pdf", "payload")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	target := fmt.Sprintf("/api/tasks/%d", created.ID)
	rec = s.doJSON(http.MethodDelete, target, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	s.Require().Empty(s.listTasks())
	s.Require().Empty(s.uploadDirEntries())

	rec = s.doJSON(http.MethodDelete, target, "")
	s.Require().Equal(http.StatusNotFound, rec.Code, rec.Body.String())
}

func (s *TasksIntegrationSuite) TestListTasks_NewestFirst() {
	var ids []uint64
	for _, title := range []string{"First", "Second", "Third"} {
		rec := s.doMultipart(http.MethodPost, "/api/tasks", map[string]string{
			"title":    title,
			"due_date": "2025-01-10",
		}, "", "")
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		var created dto.TaskItem
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
		ids = append(ids, created.ID)
	}

	tasks := s.listTasks()
	s.Require().Len(tasks, 3)
	s.Require().Equal(ids[2], tasks[0].ID)
	s.Require().Equal(ids[1], tasks[1].ID)
	s.Require().Equal(ids[0], tasks[2].ID)
}

func (s *TasksIntegrationSuite) TestTasks_RequireAuthentication() {
	token := s.token
	s.token = ""
	defer func() { s.token = token }()

	rec := s.doJSON(http.MethodGet, "/api/tasks", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code, rec.Body.String())
}

func (s *TasksIntegrationSuite) TestRegister_DuplicateEmail() {
	rec := s.doJSON(http.MethodPost, "/api/auth/register",
		`{"username":"amina2","email":"amina@example.com","password":"secret123"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	var jsonErr apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &jsonErr))
	s.Require().Equal("Email already in use", jsonErr.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestDocuments_UploadServeDelete() {
	rec := s.doMultipart(http.MethodPost, "/api/documents", map[string]string{
		"name": "Contract 2025",
	}, "contract.pdf", "contract bytes")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var document dto.DocumentItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &document))
	s.Require().Equal("Contract 2025", document.Name)

	// Stored files are served under their public path.
	rec = s.doJSON(http.MethodGet, document.FilePath, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	served, err := io.ReadAll(rec.Body)
	s.Require().NoError(err)
	s.Require().Equal("contract bytes", string(served))

	rec = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/documents/%d", document.ID), "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Require().Empty(s.uploadDirEntries())
}
