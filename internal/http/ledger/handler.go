package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/catalog"
	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/http/respond"
	"github.com/nodemart/backend/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
	log *zap.Logger
}

func NewHandler(svc *ledger.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/verify", h.verify)
	r.Get("/employee/{id}", h.historyByEmployee)
}

type createSaleLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type createSaleRequest struct {
	EmployeeID    uuid.UUID        `json:"employee_id"`
	PaymentMethod string           `json:"payment_method"`
	Lines         []createSaleLine `json:"lines"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	params := ledger.CreateSaleParams{
		EmployeeID:    req.EmployeeID,
		PaymentMethod: ledger.PaymentMethod(req.PaymentMethod),
		Lines:         make([]ledger.CreateSaleLine, len(req.Lines)),
	}

	for i, line := range req.Lines {
		params.Lines[i] = ledger.CreateSaleLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	sale, err := h.svc.CreateSale(r.Context(), params)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{"transaction": toResponse(sale)})
}

func (h *Handler) writeCreateError(w http.ResponseWriter, err error) {
	var (
		validationErr *ledger.ValidationError
		stockErr      *ledger.InsufficientStockError
	)

	switch {
	case errors.As(err, &validationErr):
		respond.Error(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, employee.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	case errors.As(err, &stockErr):
		respond.JSON(w, http.StatusConflict, map[string]any{
			"error":      stockErr.Error(),
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		})
	case errors.Is(err, ledger.ErrChainConflict):
		respond.Error(w, http.StatusServiceUnavailable, "ledger busy, please retry")
	default:
		h.log.Error("create sale failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) historyByEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	txs, err := h.svc.HistoryForEmployee(r.Context(), id)
	if err != nil {
		h.log.Error("listing employee history failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	chainBreak, err := h.svc.VerifyChain(r.Context())
	if err != nil {
		h.log.Error("chain verification failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	if chainBreak != nil {
		respond.JSON(w, http.StatusOK, map[string]any{
			"intact": false,
			"break": map[string]any{
				"seq":    chainBreak.Seq,
				"id":     chainBreak.ID,
				"reason": chainBreak.Reason,
			},
		})

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"intact": true})
}
