package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/Bhavesh-Anc/eventkaro/pkg/wedding"
	"github.com/gorilla/mux"
)

type CategoryDTO struct {
	Id         int    `json:"id"`
	WeddingId  int    `json:"weddingId"`
	Name       string `json:"name"`
	SubEventId int    `json:"subEventId,omitempty"`
	Allocated  int64  `json:"allocated"`
	Committed  int64  `json:"committed"`
	Spent      int64  `json:"spent"`
	Remaining  int64  `json:"remaining"`
}

type SummaryDTO struct {
	TotalBudget    int64         `json:"totalBudget"`
	TotalAllocated int64         `json:"totalAllocated"`
	TotalCommitted int64         `json:"totalCommitted"`
	TotalSpent     int64         `json:"totalSpent"`
	Unallocated    int64         `json:"unallocated"`
	Categories     []CategoryDTO `json:"categories"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.WeddingId = weddingId

	created, err := h.service.AddCategory(r.Context(), dtoToCategory(dto))
	if err != nil {
		if errors.Is(err, ErrCategoryDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid budget category data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, categoryToDTO(*created))
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	categories, err := h.service.GetCategories(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, categoryToDTO(c))
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
		if errors.Is(err, wedding.ErrWeddingNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Wedding not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := SummaryDTO{
		TotalBudget:    summary.TotalBudget,
		TotalAllocated: summary.TotalAllocated,
		TotalCommitted: summary.TotalCommitted,
		TotalSpent:     summary.TotalSpent,
		Unallocated:    summary.Unallocated,
		Categories:     make([]CategoryDTO, 0, len(summary.Categories)),
	}
	for _, c := range summary.Categories {
		dto.Categories = append(dto.Categories, categoryToDTO(c))
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid category id", "")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyCategory(r.Context(), dtoToCategory(dto))
	if err != nil {
		if errors.Is(err, ErrCategoryDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid budget category data", err.Error())
			return
		}
		if errors.Is(err, ErrCategoryNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Budget category not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, categoryToDTO(*updated))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid category id", "")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Budget category not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func categoryToDTO(c Category) CategoryDTO {
	return CategoryDTO{
		Id:         c.Id,
		WeddingId:  c.WeddingId,
		Name:       c.Name,
		SubEventId: c.SubEventId,
		Allocated:  c.Allocated,
		Committed:  c.Committed,
		Spent:      c.Spent,
		Remaining:  c.Remaining(),
	}
}

func dtoToCategory(dto CategoryDTO) Category {
	return Category{
		Id:         dto.Id,
		WeddingId:  dto.WeddingId,
		Name:       dto.Name,
		SubEventId: dto.SubEventId,
		Allocated:  dto.Allocated,
		Committed:  dto.Committed,
		Spent:      dto.Spent,
	}
}
