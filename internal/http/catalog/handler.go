package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/catalog"
	"github.com/nodemart/backend/internal/http/respond"
)

type Handler struct {
	svc *catalog.Service
	log *zap.Logger
}

func NewHandler(svc *catalog.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/price", h.updatePrice)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("listing products failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(products))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	product, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}

		h.log.Error("getting product failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(product))
}

type updatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

func (h *Handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.UpdatePrice(r.Context(), id, req.Price); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}

		respond.Error(w, http.StatusBadRequest, err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type pricePointResponse struct {
	Price      decimal.Decimal `json:"price"`
	RecordedAt time.Time       `json:"recorded_at"`
}

type productResponse struct {
	ID                    uuid.UUID            `json:"id"`
	Name                  string               `json:"name"`
	Category              string               `json:"category"`
	CurrentPrice          decimal.Decimal      `json:"current_price"`
	StockLevel            int                  `json:"stock_level"`
	StudentBenefits       string               `json:"student_benefits,omitempty"`
	AvailableInOtherNodes bool                 `json:"available_in_other_nodes"`
	PriceHistory          []pricePointResponse `json:"price_history,omitempty"`
}

func toResponse(p *catalog.Product) productResponse {
	resp := productResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Category:              p.Category,
		CurrentPrice:          p.CurrentPrice,
		StockLevel:            p.StockLevel,
		StudentBenefits:       p.StudentBenefits,
		AvailableInOtherNodes: p.AvailableInOtherNodes,
	}

	for _, pp := range p.PriceHistory {
		resp.PriceHistory = append(resp.PriceHistory, pricePointResponse{Price: pp.Price, RecordedAt: pp.RecordedAt})
	}

	return resp
}

func toResponseList(products []*catalog.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	return resp
}
