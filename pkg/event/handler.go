package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type VenueDTO struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Type    string `json:"type,omitempty"`
}

type VendorAssignmentDTO struct {
	Id          int        `json:"id,omitempty"`
	VendorId    int        `json:"vendorId"`
	Status      string     `json:"status"`
	ArrivalTime *time.Time `json:"arrivalTime,omitempty"`
	Scope       string     `json:"scope,omitempty"`
}

type BudgetSnapshotDTO struct {
	Allocated int64 `json:"allocated"`
	Committed int64 `json:"committed"`
	Spent     int64 `json:"spent"`
}

type SubEventDTO struct {
	Id                int                   `json:"id"`
	WeddingId         int                   `json:"weddingId"`
	Type              string                `json:"type"`
	CustomName        string                `json:"customName,omitempty"`
	Title             string                `json:"title"`
	StartTime         time.Time             `json:"start"`
	EndTime           time.Time             `json:"end"`
	Venue             VenueDTO              `json:"venue"`
	ExpectedGuests    int                   `json:"expectedGuests,omitempty"`
	GuestGroup        string                `json:"guestGroup,omitempty"`
	DressCode         string                `json:"dressCode,omitempty"`
	ColorTheme        string                `json:"colorTheme,omitempty"`
	TransportRequired bool                  `json:"transportRequired"`
	TransportAssigned bool                  `json:"transportAssigned"`
	Description       string                `json:"description,omitempty"`
	Vendors           []VendorAssignmentDTO `json:"vendors"`
	Budget            *BudgetSnapshotDTO    `json:"budget,omitempty"`
}

type EventStatusDTO struct {
	Status    string   `json:"status"`
	Issues    []string `json:"issues"`
	Conflicts []string `json:"conflicts"`
}

type SubEventWithStatusDTO struct {
	SubEventDTO
	EventStatus EventStatusDTO `json:"eventStatus"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto SubEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.WeddingId = weddingId

	created, err := h.service.AddEvent(r.Context(), dtoToEvent(dto))
	if err != nil {
		if errors.Is(err, ErrEventDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid sub-event data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, eventToDTO(*created))
}

// CreateEvents is the setup wizard endpoint: it accepts the whole list of
// occasions and stores them atomically.
func (h *Handler) CreateEvents(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dtos []SubEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	events := make([]SubEvent, 0, len(dtos))
	for _, dto := range dtos {
		dto.WeddingId = weddingId
		events = append(events, dtoToEvent(dto))
	}

	created, err := h.service.AddEvents(r.Context(), events)
	if err != nil {
		if errors.Is(err, ErrEventDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid sub-event data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	createdDTOs := make([]SubEventDTO, 0, len(created))
	for _, e := range created {
		createdDTOs = append(createdDTOs, eventToDTO(e))
	}
	rest.WriteJSON(w, http.StatusCreated, createdDTOs)
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	if r.URL.Query().Get("withStatus") == "true" {
		withStatus, err := h.service.GetEventsWithStatus(r.Context(), weddingId)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		dtos := make([]SubEventWithStatusDTO, 0, len(withStatus))
		for _, e := range withStatus {
			dtos = append(dtos, SubEventWithStatusDTO{
				SubEventDTO: eventToDTO(e.SubEvent),
				EventStatus: EventStatusDTO{
					Status:    string(e.Status),
					Issues:    e.Issues,
					Conflicts: e.Conflicts,
				},
			})
		}
		rest.WriteJSON(w, http.StatusOK, dtos)
		return
	}

	events, err := h.service.GetEvents(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]SubEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["eventId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event id", "")
		return
	}

	found, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Sub-event not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(found))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["eventId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event id", "")
		return
	}

	var dto SubEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyEvent(r.Context(), dtoToEvent(dto))
	if err != nil {
		if errors.Is(err, ErrEventDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid sub-event data", err.Error())
			return
		}
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Sub-event not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(*updated))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["eventId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event id", "")
		return
	}

	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Sub-event not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("Deleted sub-event %d", id)
	w.WriteHeader(http.StatusNoContent)
}

func eventToDTO(e SubEvent) SubEventDTO {
	vendors := make([]VendorAssignmentDTO, 0, len(e.Vendors))
	for _, a := range e.Vendors {
		vendors = append(vendors, VendorAssignmentDTO{
			Id:          a.Id,
			VendorId:    a.VendorId,
			Status:      string(a.Status),
			ArrivalTime: a.ArrivalTime,
			Scope:       a.Scope,
		})
	}

	var budget *BudgetSnapshotDTO
	if e.Budget != nil {
		budget = &BudgetSnapshotDTO{
			Allocated: e.Budget.Allocated,
			Committed: e.Budget.Committed,
			Spent:     e.Budget.Spent,
		}
	}

	return SubEventDTO{
		Id:                e.Id,
		WeddingId:         e.WeddingId,
		Type:              string(e.Type),
		CustomName:        e.CustomName,
		Title:             e.Title(),
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		Venue: VenueDTO{
			Name:    e.Venue.Name,
			Address: e.Venue.Address,
			City:    e.Venue.City,
			State:   e.Venue.State,
			Type:    string(e.Venue.Type),
		},
		ExpectedGuests:    e.ExpectedGuests,
		GuestGroup:        e.GuestGroup,
		DressCode:         e.DressCode,
		ColorTheme:        e.ColorTheme,
		TransportRequired: e.TransportRequired,
		TransportAssigned: e.TransportAssigned,
		Description:       e.Description,
		Vendors:           vendors,
		Budget:            budget,
	}
}

func dtoToEvent(dto SubEventDTO) SubEvent {
	vendors := make([]VendorAssignment, 0, len(dto.Vendors))
	for _, a := range dto.Vendors {
		vendors = append(vendors, VendorAssignment{
			Id:          a.Id,
			VendorId:    a.VendorId,
			Status:      ConfirmationStatus(a.Status),
			ArrivalTime: a.ArrivalTime,
			Scope:       a.Scope,
		})
	}

	var budget *BudgetSnapshot
	if dto.Budget != nil {
		budget = &BudgetSnapshot{
			Allocated: dto.Budget.Allocated,
			Committed: dto.Budget.Committed,
			Spent:     dto.Budget.Spent,
		}
	}

	return SubEvent{
		Id:         dto.Id,
		WeddingId:  dto.WeddingId,
		Type:       EventType(dto.Type),
		CustomName: dto.CustomName,
		StartTime:  dto.StartTime,
		EndTime:    dto.EndTime,
		Venue: Venue{
			Name:    dto.Venue.Name,
			Address: dto.Venue.Address,
			City:    dto.Venue.City,
			State:   dto.Venue.State,
			Type:    VenueType(dto.Venue.Type),
		},
		ExpectedGuests:    dto.ExpectedGuests,
		GuestGroup:        dto.GuestGroup,
		DressCode:         dto.DressCode,
		ColorTheme:        dto.ColorTheme,
		TransportRequired: dto.TransportRequired,
		TransportAssigned: dto.TransportAssigned,
		Description:       dto.Description,
		Vendors:           vendors,
		Budget:            budget,
	}
}
