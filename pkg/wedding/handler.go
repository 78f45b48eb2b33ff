package wedding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type WeddingDTO struct {
	Id          int       `json:"id"`
	BrideName   string    `json:"brideName"`
	GroomName   string    `json:"groomName"`
	WeddingDate time.Time `json:"weddingDate"`
	City        string    `json:"city"`
	TotalBudget int64     `json:"totalBudget"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateWedding(w http.ResponseWriter, r *http.Request) {
	var dto WeddingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	created, err := h.service.CreateWedding(r.Context(), dtoToWedding(dto))
	if err != nil {
		if errors.Is(err, ErrWeddingDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid wedding data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, weddingToDTO(*created))
}

func (h *Handler) GetWedding(w http.ResponseWriter, r *http.Request) {
	id, err := weddingId(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	found, err := h.service.GetWedding(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrWeddingNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Wedding not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, weddingToDTO(found))
}

func (h *Handler) ListWeddings(w http.ResponseWriter, r *http.Request) {
	weddings, err := h.service.GetWeddings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]WeddingDTO, 0, len(weddings))
	for _, wed := range weddings {
		dtos = append(dtos, weddingToDTO(wed))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) UpdateWedding(w http.ResponseWriter, r *http.Request) {
	id, err := weddingId(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto WeddingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.UpdateWedding(r.Context(), dtoToWedding(dto))
	if err != nil {
		if errors.Is(err, ErrWeddingNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Wedding not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, weddingToDTO(*updated))
}

func (h *Handler) DeleteWedding(w http.ResponseWriter, r *http.Request) {
	id, err := weddingId(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	if err := h.service.DeleteWedding(r.Context(), id); err != nil {
		if errors.Is(err, ErrWeddingNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Wedding not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func weddingId(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["weddingId"])
}

func weddingToDTO(w Wedding) WeddingDTO {
	return WeddingDTO{
		Id:          w.Id,
		BrideName:   w.BrideName,
		GroomName:   w.GroomName,
		WeddingDate: w.WeddingDate,
		City:        w.City,
		TotalBudget: w.TotalBudget,
	}
}

func dtoToWedding(dto WeddingDTO) Wedding {
	return Wedding{
		Id:          dto.Id,
		BrideName:   dto.BrideName,
		GroomName:   dto.GroomName,
		WeddingDate: dto.WeddingDate,
		City:        dto.City,
		TotalBudget: dto.TotalBudget,
	}
}
