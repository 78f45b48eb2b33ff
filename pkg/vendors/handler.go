package vendors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type VendorDTO struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	City        string  `json:"city,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty"`
	BasePrice   int64   `json:"basePrice"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

type BookingDTO struct {
	Id             int    `json:"id"`
	WeddingId      int    `json:"weddingId"`
	VendorId       int    `json:"vendorId"`
	VendorName     string `json:"vendorName,omitempty"`
	VendorCategory string `json:"vendorCategory,omitempty"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	Notes          string `json:"notes,omitempty"`
}

type ReviewDTO struct {
	Id        int       `json:"id"`
	VendorId  int       `json:"vendorId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var dto VendorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	created, err := h.service.AddVendor(r.Context(), dtoToVendor(dto))
	if err != nil {
		if errors.Is(err, ErrVendorDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid vendor data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, vendorToDTO(*created))
}

func (h *Handler) FindVendors(w http.ResponseWriter, r *http.Request) {
	filter := VendorFilter{
		Category: Category(r.URL.Query().Get("category")),
		City:     r.URL.Query().Get("city"),
	}

	found, err := h.service.FindVendors(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrVendorDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid vendor filter", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]VendorDTO, 0, len(found))
	for _, v := range found {
		dtos = append(dtos, vendorToDTO(v))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["vendorId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid vendor id", "")
		return
	}

	vendor, err := h.service.GetVendor(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Vendor not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, vendorToDTO(vendor))
}

func (h *Handler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["vendorId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid vendor id", "")
		return
	}

	var dto VendorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyVendor(r.Context(), dtoToVendor(dto))
	if err != nil {
		if errors.Is(err, ErrVendorDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid vendor data", err.Error())
			return
		}
		if errors.Is(err, ErrVendorNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Vendor not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, vendorToDTO(*updated))
}

func (h *Handler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["vendorId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid vendor id", "")
		return
	}

	if err := h.service.DeleteVendor(r.Context(), id); err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Vendor not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto BookingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.WeddingId = weddingId

	created, err := h.service.AddBooking(r.Context(), dtoToBooking(dto))
	if err != nil {
		if errors.Is(err, ErrVendorNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Vendor not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, bookingToDTO(*created))
}

func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	bookings, err := h.service.GetBookings(r.Context(), weddingId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, bookingToDTO(b))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid booking id", "")
		return
	}

	var dto BookingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyBooking(r.Context(), dtoToBooking(dto))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Booking not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, bookingToDTO(*updated))
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["bookingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid booking id", "")
		return
	}

	if err := h.service.DeleteBooking(r.Context(), id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Booking not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	vendorId, err := strconv.Atoi(mux.Vars(r)["vendorId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid vendor id", "")
		return
	}

	var dto ReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	created, err := h.service.AddReview(r.Context(), Review{
		VendorId: vendorId,
		Rating:   dto.Rating,
		Comment:  dto.Comment,
	})
	if err != nil {
		if errors.Is(err, ErrVendorDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid review data", err.Error())
			return
		}
		if errors.Is(err, ErrVendorNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Vendor not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, reviewToDTO(*created))
}

func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	vendorId, err := strconv.Atoi(mux.Vars(r)["vendorId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid vendor id", "")
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), vendorId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ReviewDTO, 0, len(reviews))
	for _, rev := range reviews {
		dtos = append(dtos, reviewToDTO(rev))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func vendorToDTO(v Vendor) VendorDTO {
	return VendorDTO{
		Id:          v.Id,
		Name:        v.Name,
		Category:    string(v.Category),
		City:        v.City,
		Phone:       v.Phone,
		Email:       v.Email,
		BasePrice:   v.BasePrice,
		Rating:      v.Rating,
		ReviewCount: v.ReviewCount,
	}
}

func dtoToVendor(dto VendorDTO) Vendor {
	return Vendor{
		Id:        dto.Id,
		Name:      dto.Name,
		Category:  Category(dto.Category),
		City:      dto.City,
		Phone:     dto.Phone,
		Email:     dto.Email,
		BasePrice: dto.BasePrice,
	}
}

func bookingToDTO(b Booking) BookingDTO {
	return BookingDTO{
		Id:             b.Id,
		WeddingId:      b.WeddingId,
		VendorId:       b.VendorId,
		VendorName:     b.VendorName,
		VendorCategory: string(b.VendorCategory),
		Status:         string(b.Status),
		Amount:         b.Amount,
		Notes:          b.Notes,
	}
}

func dtoToBooking(dto BookingDTO) Booking {
	return Booking{
		Id:        dto.Id,
		WeddingId: dto.WeddingId,
		VendorId:  dto.VendorId,
		Status:    BookingStatus(dto.Status),
		Amount:    dto.Amount,
		Notes:     dto.Notes,
	}
}

func reviewToDTO(rev Review) ReviewDTO {
	return ReviewDTO{
		Id:        rev.Id,
		VendorId:  rev.VendorId,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt,
	}
}
