package timeline

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type ItemDTO struct {
	Id       string    `json:"id"`
	Source   string    `json:"source"`
	Date     time.Time `json:"date"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Status   string    `json:"status"`
	ColorKey string    `json:"colorKey"`
}

type DayGroupDTO struct {
	Date  string    `json:"date"`
	Items []ItemDTO `json:"items"`
}

type ViewDTO struct {
	Upcoming []DayGroupDTO `json:"upcoming"`
	Past     []DayGroupDTO `json:"past"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	opts := Options{
		Filter:        Filter(r.URL.Query().Get("filter")),
		ShowCompleted: r.URL.Query().Get("showCompleted") == "true",
	}

	view, err := h.service.GetTimeline(r.Context(), weddingId, opts)
	if err != nil {
		if errors.Is(err, ErrFilterInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid timeline filter", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, viewToDTO(view))
}

func (h *Handler) ExportRunSheet(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	serialized, err := h.service.ExportRunSheet(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="run-sheet.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(serialized))
}

func viewToDTO(view View) ViewDTO {
	dto := ViewDTO{
		Upcoming: make([]DayGroupDTO, 0, len(view.Upcoming)),
		Past:     make([]DayGroupDTO, 0, len(view.Past)),
	}
	for _, g := range view.Upcoming {
		dto.Upcoming = append(dto.Upcoming, dayGroupToDTO(g))
	}
	for _, g := range view.Past {
		dto.Past = append(dto.Past, dayGroupToDTO(g))
	}
	return dto
}

func dayGroupToDTO(g DayGroup) DayGroupDTO {
	items := make([]ItemDTO, 0, len(g.Items))
	for _, item := range g.Items {
		items = append(items, ItemDTO{
			Id:       item.Id,
			Source:   string(item.Source),
			Date:     item.Date,
			Title:    item.Title,
			Subtitle: item.Subtitle,
			Status:   item.Status,
			ColorKey: item.ColorKey,
		})
	}
	return DayGroupDTO{
		Date:  g.Date.Format("2006-01-02"),
		Items: items,
	}
}
