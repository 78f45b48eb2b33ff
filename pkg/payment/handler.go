package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/rest"
	"github.com/gorilla/mux"
)

type InstallmentDTO struct {
	Id             int        `json:"id"`
	WeddingId      int        `json:"weddingId"`
	BookingId      int        `json:"bookingId,omitempty"`
	VendorName     string     `json:"vendorName"`
	VendorCategory string     `json:"vendorCategory,omitempty"`
	Amount         int64      `json:"amount"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateInstallment(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var dto InstallmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.WeddingId = weddingId

	created, err := h.service.AddInstallment(r.Context(), dtoToInstallment(dto))
	if err != nil {
		if errors.Is(err, ErrInstallmentDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid installment data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, installmentToDTO(*created))
}

func (h *Handler) GetInstallments(w http.ResponseWriter, r *http.Request) {
	weddingId, err := strconv.Atoi(mux.Vars(r)["weddingId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid wedding id", "")
		return
	}

	var installments []Installment
	if daysParam := r.URL.Query().Get("dueWithinDays"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days < 0 {
			rest.WriteError(w, http.StatusBadRequest, "Invalid dueWithinDays value", "")
			return
		}
		installments, err = h.service.GetDueInstallments(r.Context(), weddingId, days)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	} else {
		installments, err = h.service.GetInstallments(r.Context(), weddingId)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	dtos := make([]InstallmentDTO, 0, len(installments))
	for _, i := range installments {
		dtos = append(dtos, installmentToDTO(i))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetInstallment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["installmentId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid installment id", "")
		return
	}

	installment, err := h.service.GetInstallment(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInstallmentNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Installment not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, installmentToDTO(installment))
}

func (h *Handler) UpdateInstallment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["installmentId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid installment id", "")
		return
	}

	var dto InstallmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = id

	updated, err := h.service.ModifyInstallment(r.Context(), dtoToInstallment(dto))
	if err != nil {
		if errors.Is(err, ErrInstallmentDataInvalid) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid installment data", err.Error())
			return
		}
		if errors.Is(err, ErrInstallmentNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Installment not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, installmentToDTO(*updated))
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["installmentId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid installment id", "")
		return
	}

	paid, err := h.service.MarkPaid(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInstallmentNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Installment not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, installmentToDTO(*paid))
}

func (h *Handler) DeleteInstallment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["installmentId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid installment id", "")
		return
	}

	if err := h.service.DeleteInstallment(r.Context(), id); err != nil {
		if errors.Is(err, ErrInstallmentNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Installment not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func installmentToDTO(i Installment) InstallmentDTO {
	return InstallmentDTO{
		Id:             i.Id,
		WeddingId:      i.WeddingId,
		BookingId:      i.BookingId,
		VendorName:     i.VendorName,
		VendorCategory: i.VendorCategory,
		Amount:         i.Amount,
		DueDate:        i.DueDate,
		Status:         string(i.Status),
		PaidAt:         i.PaidAt,
		Notes:          i.Notes,
	}
}

func dtoToInstallment(dto InstallmentDTO) Installment {
	return Installment{
		Id:             dto.Id,
		WeddingId:      dto.WeddingId,
		BookingId:      dto.BookingId,
		VendorName:     dto.VendorName,
		VendorCategory: dto.VendorCategory,
		Amount:         dto.Amount,
		DueDate:        dto.DueDate,
		Status:         Status(dto.Status),
		Notes:          dto.Notes,
	}
}
