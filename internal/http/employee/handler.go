package employee

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/http/respond"
)

// TrustScorer derives an employee's trust score from the sale ledger.
type TrustScorer interface {
	TrustScore(ctx context.Context, employeeID uuid.UUID) (int, error)
}

type Handler struct {
	svc   *employee.Service
	trust TrustScorer
	log   *zap.Logger
}

func NewHandler(svc *employee.Service, trust TrustScorer, log *zap.Logger) *Handler {
	return &Handler{svc: svc, trust: trust, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/trust-score", h.trustScore)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	node := r.URL.Query().Get("node")
	if node == "All" {
		node = ""
	}

	employees, err := h.svc.List(r.Context(), node)
	if err != nil {
		h.log.Error("listing employees failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(employees))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	emp, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "employee not found")
			return
		}

		h.log.Error("getting employee failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(emp))
}

func (h *Handler) trustScore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	score, err := h.trust.TrustScore(r.Context(), id)
	if err != nil {
		h.log.Error("computing trust score failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, map[string]int{"trust_score": score})
}

type employeeResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	NodeLocation    string          `json:"node_location"`
	ItemsSold       int             `json:"items_sold"`
	TotalSalesValue decimal.Decimal `json:"total_sales_value"`
	ProfitGenerated decimal.Decimal `json:"profit_generated"`
	AvgDiscount     decimal.Decimal `json:"avg_discount"`
	Rating          string          `json:"rating"`
}

func toResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		NodeLocation:    e.NodeLocation,
		ItemsSold:       e.ItemsSold,
		TotalSalesValue: e.TotalSalesValue,
		ProfitGenerated: e.ProfitGenerated,
		AvgDiscount:     e.AvgDiscount,
		Rating:          e.Rating,
	}
}

func toResponseList(employees []*employee.Employee) []employeeResponse {
	resp := make([]employeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = toResponse(e)
	}

	return resp
}
