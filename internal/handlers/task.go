package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elisoft-engineer/todo-api/internal/middleware"
	"github.com/elisoft-engineer/todo-api/internal/models"
	"github.com/elisoft-engineer/todo-api/internal/permissions"
	"github.com/elisoft-engineer/todo-api/internal/service"
)

// TaskHandler handles task HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskCreateRequest represents the task creation payload.
type TaskCreateRequest struct {
	Detail   string `json:"detail" binding:"required"`
	Priority int    `json:"priority" binding:"required,min=1,max=5"`
}

// TaskUpdateRequest represents the task update payload. Status is not
// updatable here; it only moves through the transition endpoint.
type TaskUpdateRequest struct {
	Detail   string `json:"detail" binding:"required"`
	Priority int    `json:"priority" binding:"required,min=1,max=5"`
}

// TaskResponse represents a task on the wire. The user field carries
// the owner's email.
type TaskResponse struct {
	ID            uuid.UUID         `json:"id"`
	Detail        string            `json:"detail"`
	Priority      int               `json:"priority"`
	Status        models.TaskStatus `json:"status"`
	User          string            `json:"user"`
	CreatedAt     time.Time         `json:"created_at"`
	HumanizedTime string            `json:"humanized_time"`
}

func newTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		Detail:        task.Detail,
		Priority:      task.Priority,
		Status:        task.Status,
		User:          task.User.Email,
		CreatedAt:     task.CreatedAt,
		HumanizedTime: task.HumanizedTime(time.Now()),
	}
}

// List godoc
// @Summary List own tasks
// @Description List the authenticated user's tasks filtered by status
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param status query string true "Filter tasks by their status"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} map[string]string
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	principal, _ := middleware.CurrentUser(c)

	tasks, err := h.taskService.ListByStatus(c.Request.Context(), principal.ID, c.Query("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			RespondError(c, http.StatusBadRequest, "Invalid task status was parsed")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to list tasks")
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		response = append(response, newTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Create a task
// @Description Create a task owned by the authenticated user with status todo
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TaskCreateRequest true "Task fields"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} map[string]string
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.CurrentUser(c)

	task, err := h.taskService.Create(c.Request.Context(), principal, req.Detail, req.Priority)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// Retrieve godoc
// @Summary Retrieve a task
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [get]
func (h *TaskHandler) Retrieve(c *gin.Context) {
	task, ok := h.ownedTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Update godoc
// @Summary Update a task
// @Description Update detail and priority of an owned task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body TaskUpdateRequest true "Task fields"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := h.ownedTask(c)
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.taskService.Update(c.Request.Context(), task, req.Detail, req.Priority); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Transition godoc
// @Summary Advance or hold a task
// @Description Move an owned task forward in its workflow, or place it on hold with the to-onhold flag
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Param to-onhold query string false "Whether to push task to `on hold`"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [patch]
func (h *TaskHandler) Transition(c *gin.Context) {
	task, ok := h.ownedTask(c)
	if !ok {
		return
	}

	intent := service.IntentAdvance
	if isTruthy(c.Query("to-onhold")) {
		intent = service.IntentHold
	}

	message, err := h.taskService.Transition(c.Request.Context(), task, intent)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to update task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": message})
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := h.ownedTask(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), task); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete task")
		return
	}

	c.JSON(http.StatusNoContent, gin.H{"detail": "Task deleted successfully"})
}

// ownedTask resolves the path id to a task and enforces the owner-only
// object check. Existence is checked first, so a missing id yields 404
// before any ownership verdict.
func (h *TaskHandler) ownedTask(c *gin.Context) (*models.Task, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "Not found")
		return nil, false
	}

	task, err := h.taskService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			RespondError(c, http.StatusNotFound, "Not found")
			return nil, false
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to fetch task")
		return nil, false
	}

	principal, _ := middleware.CurrentUser(c)
	if !permissions.OwnerOnly(principal, task.UserID) {
		RespondError(c, http.StatusForbidden, "You do not have permission to perform this action")
		return nil, false
	}

	return task, true
}

// isTruthy reports whether a query flag value counts as true. The
// accepted forms are fixed for wire compatibility.
func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	}
	return false
}
