package shift

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/http/respond"
	"github.com/nodemart/backend/internal/shift"
)

type Handler struct {
	svc *shift.Service
	log *zap.Logger
}

func NewHandler(svc *shift.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/close", h.close)
	r.Get("/", h.list)
}

type closeShiftRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id"`
	ActualCash *decimal.Decimal `json:"actual_cash"`
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	var req closeShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ActualCash == nil {
		respond.Error(w, http.StatusBadRequest, "actual_cash is required")
		return
	}

	report, err := h.svc.Close(r.Context(), req.EmployeeID, *req.ActualCash)
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrNegativeCash):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, employee.ErrNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		default:
			h.log.Error("close shift failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{"report": toResponse(report)})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}

		limit = n
	}

	reports, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Error("listing shift reports failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(reports))
}

type reportResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	ClosedAt     time.Time       `json:"closed_at"`
	ExpectedCash decimal.Decimal `json:"expected_cash"`
	ActualCash   decimal.Decimal `json:"actual_cash"`
	Discrepancy  decimal.Decimal `json:"discrepancy"`
	Status       string          `json:"status"`
}

func toResponse(r *shift.Report) reportResponse {
	return reportResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		ClosedAt:     r.ClosedAt,
		ExpectedCash: r.ExpectedCash,
		ActualCash:   r.ActualCash,
		Discrepancy:  r.Discrepancy,
		Status:       string(r.Status),
	}
}

func toResponseList(reports []*shift.Report) []reportResponse {
	resp := make([]reportResponse, len(reports))
	for i, r := range reports {
		resp[i] = toResponse(r)
	}

	return resp
}
