package guest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type GuestDTO struct {
	Id           int    `json:"id"`
	WeddingId    int    `json:"weddingId"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Side         string `json:"side"`
	Group        string `json:"group,omitempty"`
	RSVP         string `json:"rsvp"`
	PlusOnes     int    `json:"plusOnes"`
	DietaryNotes string `json:"dietaryNotes,omitempty"`
}

type SummaryDTO struct {
	Total     int `json:"total"`
	Accepted  int `json:"accepted"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
	Headcount int `json:"headcount"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto GuestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.WeddingId = weddingId

	created, err := h.service.AddGuest(r.Context(), dtoToGuest(dto))
	if err != nil {
		if errors.Is(err, ErrGuestDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid guest data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, guestToDTO(*created))
}

func (h *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	guests, err := h.service.GetGuests(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]GuestDTO, 0, len(guests))
	for _, g := range guests {
		dtos = append(dtos, guestToDTO(g))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	summary, err := h.service.GetSummary(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SummaryDTO{
		Total:     summary.Total,
		Accepted:  summary.Accepted,
		Declined:  summary.Declined,
		Pending:   summary.Pending,
		Headcount: summary.Headcount,
	})
}

func (h *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["guestId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid guest id", "")
		return
	}

	var dto GuestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyGuest(r.Context(), dtoToGuest(dto))
	if err != nil {
		if errors.Is(err, ErrGuestDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid guest data", err.Error())
			return
		}
		if errors.Is(err, ErrGuestNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Guest not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, guestToDTO(*updated))
}

func (h *Handler) SetRSVP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["guestId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid guest id", "")
		return
	}

	var body struct {
		RSVP string `json:"rsvp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	updated, err := h.service.SetRSVP(r.Context(), id, RSVPStatus(body.RSVP))
	if err != nil {
		if errors.Is(err, ErrGuestDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid RSVP status", err.Error())
			return
		}
		if errors.Is(err, ErrGuestNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Guest not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, guestToDTO(*updated))
}

func (h *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["guestId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid guest id", "")
		return
	}

	if err := h.service.DeleteGuest(r.Context(), id); err != nil {
		if errors.Is(err, ErrGuestNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Guest not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func guestToDTO(g Guest) GuestDTO {
	return GuestDTO{
		Id:           g.Id,
		WeddingId:    g.WeddingId,
		Name:         g.Name,
		Phone:        g.Phone,
		Email:        g.Email,
		Side:         string(g.Side),
		Group:        g.Group,
		RSVP:         string(g.RSVP),
		PlusOnes:     g.PlusOnes,
		DietaryNotes: g.DietaryNotes,
	}
}

func dtoToGuest(dto GuestDTO) Guest {
	return Guest{
		Id:           dto.Id,
		WeddingId:    dto.WeddingId,
		Name:         dto.Name,
		Phone:        dto.Phone,
		Email:        dto.Email,
		Side:         Side(dto.Side),
		Group:        dto.Group,
		RSVP:         RSVPStatus(dto.RSVP),
		PlusOnes:     dto.PlusOnes,
		DietaryNotes: dto.DietaryNotes,
	}
}
