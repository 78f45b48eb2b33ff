package gallery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type PhotoDTO struct {
	Id         int       `json:"id"`
	WeddingId  int       `json:"weddingId"`
	SubEventId int       `json:"subEventId,omitempty"`
	Url        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto PhotoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	created, err := h.service.AddPhoto(r.Context(), Photo{
		WeddingId:  weddingId,
		SubEventId: dto.SubEventId,
		Url:        dto.Url,
		Caption:    dto.Caption,
	})
	if err != nil {
		if errors.Is(err, ErrPhotoDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid photo data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, photoToDTO(*created))
}

func (h *Handler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	photos, err := h.service.GetPhotos(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]PhotoDTO, 0, len(photos))
	for _, p := range photos {
		dtos = append(dtos, photoToDTO(p))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["photoId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid photo id", "")
		return
	}

	var dto PhotoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	updated, err := h.service.ModifyPhoto(r.Context(), Photo{
		Id:         id,
		SubEventId: dto.SubEventId,
		Caption:    dto.Caption,
	})
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Photo not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, photoToDTO(*updated))
}

func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["photoId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid photo id", "")
		return
	}

	if err := h.service.DeletePhoto(r.Context(), id); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Photo not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func photoToDTO(p Photo) PhotoDTO {
	return PhotoDTO{
		Id:         p.Id,
		WeddingId:  p.WeddingId,
		SubEventId: p.SubEventId,
		Url:        p.Url,
		Caption:    p.Caption,
		UploadedAt: p.UploadedAt,
	}
}
