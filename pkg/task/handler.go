package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type TaskDTO struct {
	Id          int        `json:"id"`
	WeddingId   int        `json:"weddingId"`
	Title       string     `json:"title"`
	DueDate     time.Time  `json:"dueDate"`
	Done        bool       `json:"done"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.WeddingId = weddingId

	created, err := h.service.AddTask(r.Context(), dtoToTask(dto))
	if err != nil {
		if errors.Is(err, ErrTaskDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid task data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, taskToDTO(*created))
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	tasks, err := h.service.GetTasks(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, taskToDTO(t))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["taskId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", "")
		return
	}

	t, err := h.service.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Task not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, taskToDTO(t))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["taskId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", "")
		return
	}

	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyTask(r.Context(), dtoToTask(dto))
	if err != nil {
		if errors.Is(err, ErrTaskDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid task data", err.Error())
			return
		}
		if errors.Is(err, ErrTaskNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Task not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, taskToDTO(*updated))
}

func (h *Handler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["taskId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", "")
		return
	}

	toggled, err := h.service.ToggleComplete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Task not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, taskToDTO(*toggled))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["taskId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid task id", "")
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Task not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func taskToDTO(t Task) TaskDTO {
	return TaskDTO{
		Id:          t.Id,
		WeddingId:   t.WeddingId,
		Title:       t.Title,
		DueDate:     t.DueDate,
		Done:        t.Done,
		Priority:    string(t.Priority),
		Category:    t.Category,
		CompletedAt: t.CompletedAt,
	}
}

func dtoToTask(dto TaskDTO) Task {
	return Task{
		Id:        dto.Id,
		WeddingId: dto.WeddingId,
		Title:     dto.Title,
		DueDate:   dto.DueDate,
		Done:      dto.Done,
		Priority:  Priority(dto.Priority),
		Category:  dto.Category,
	}
}
