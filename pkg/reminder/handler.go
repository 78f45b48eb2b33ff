package reminder

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type ReminderDTO struct {
	Id        int        `json:"id"`
	WeddingId int        `json:"weddingId"`
	Title     string     `json:"title"`
	Message   string     `json:"message,omitempty"`
	Kind      string     `json:"kind,omitempty"`
	RefId     int        `json:"refId,omitempty"`
	Channel   string     `json:"channel,omitempty"`
	RemindAt  time.Time  `json:"remindAt"`
	Sent      bool       `json:"sent"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto ReminderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	created, err := h.service.AddReminder(r.Context(), Reminder{
		WeddingId: weddingId,
		Title:     dto.Title,
		Message:   dto.Message,
		Kind:      EntityKind(dto.Kind),
		RefId:     dto.RefId,
		Channel:   Channel(dto.Channel),
		RemindAt:  dto.RemindAt,
	})
	if err != nil {
		if errors.Is(err, ErrReminderDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid reminder data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, reminderToDTO(*created))
}

func (h *Handler) GetReminders(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	reminders, err := h.service.GetReminders(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ReminderDTO, 0, len(reminders))
	for _, rem := range reminders {
		dtos = append(dtos, reminderToDTO(rem))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["reminderId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid reminder id", "")
		return
	}

	if err := h.service.DeleteReminder(r.Context(), id); err != nil {
		if errors.Is(err, ErrReminderNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Reminder not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func reminderToDTO(r Reminder) ReminderDTO {
	return ReminderDTO{
		Id:        r.Id,
		WeddingId: r.WeddingId,
		Title:     r.Title,
		Message:   r.Message,
		Kind:      string(r.Kind),
		RefId:     r.RefId,
		Channel:   string(r.Channel),
		RemindAt:  r.RemindAt,
		Sent:      r.Sent,
		SentAt:    r.SentAt,
	}
}
