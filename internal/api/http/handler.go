package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shestoi/qare/internal/repository"
	"github.com/shestoi/qare/internal/service"
	platformobservability "github.com/shestoi/qare/platform/observability"
)

// SuppliesPath - базовый путь ресурса, используется и в роутере, и в заголовке Location
const SuppliesPath = "/api/supplies"

// Handler содержит HTTP-обработчики Supply Service
// Только переводит HTTP в вызовы service и ошибки в статусы
type Handler struct {
	supplyService *service.SupplyService
	logger        *zap.Logger
}

// NewHandler создаёт новый HTTP handler
func NewHandler(supplyService *service.SupplyService, logger *zap.Logger) *Handler {
	return &Handler{
		supplyService: supplyService,
		logger:        logger,
	}
}

// SupplyRequest - тело POST/PUT запроса
// Указатели позволяют отличить отсутствующее поле от нулевого значения
type SupplyRequest struct {
	Name     *string `json:"name"`
	Amount   *int    `json:"amount"`
	UnitName *string `json:"unitName"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateSupply обрабатывает POST /api/supplies
func (h *Handler) CreateSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := platformobservability.LoggerFromContext(ctx, h.logger)

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := h.supplyService.Add(ctx, repository.Supply{
		Name:     deref(req.Name),
		Amount:   *req.Amount,
		UnitName: deref(req.UnitName),
	})
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	w.Header().Set("Location", SuppliesPath+"/"+url.PathEscape(created.Name))
	writeJSON(w, log, http.StatusCreated, created)
}

// ListSupplies обрабатывает GET /api/supplies
func (h *Handler) ListSupplies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := platformobservability.LoggerFromContext(ctx, h.logger)

	supplies, err := h.supplyService.List(ctx)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, supplies)
}

// GetSupply обрабатывает GET /api/supplies/{name}
func (h *Handler) GetSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := platformobservability.LoggerFromContext(ctx, h.logger)

	name, ok := nameParam(w, r, log)
	if !ok {
		return
	}

	supply, found, err := h.supplyService.Get(ctx, name)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	if !found {
		writeJSON(w, log, http.StatusNotFound, errorResponse{Error: "supply not found"})
		return
	}

	writeJSON(w, log, http.StatusOK, supply)
}

// UpdateSupply обрабатывает PUT /api/supplies/{name}
// Ключ берётся только из пути, name в теле игнорируется
func (h *Handler) UpdateSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := platformobservability.LoggerFromContext(ctx, h.logger)

	name, ok := nameParam(w, r, log)
	if !ok {
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	toUpdate := repository.Supply{
		Name:     name,
		Amount:   *req.Amount,
		UnitName: deref(req.UnitName),
	}

	updated, err := h.supplyService.Update(ctx, toUpdate)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	if !updated {
		writeJSON(w, log, http.StatusNotFound, errorResponse{Error: "supply not found"})
		return
	}

	writeJSON(w, log, http.StatusOK, service.Normalize(toUpdate))
}

// DeleteSupply обрабатывает DELETE /api/supplies/{name}
func (h *Handler) DeleteSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := platformobservability.LoggerFromContext(ctx, h.logger)

	name, ok := nameParam(w, r, log)
	if !ok {
		return
	}

	deleted, err := h.supplyService.Delete(ctx, name)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}
	if !deleted {
		writeJSON(w, log, http.StatusNotFound, errorResponse{Error: "supply not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeRequest читает тело запроса; при ошибке сам пишет 400
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (*SupplyRequest, bool) {
	log := platformobservability.LoggerFromContext(r.Context(), h.logger)

	var req *SupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug("JSON decode error", zap.Error(err))
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return nil, false
	}
	if req == nil {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid supply: supply must not be null"})
		return nil, false
	}
	if req.Amount == nil {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid supply: amount is required"})
		return nil, false
	}

	return req, true
}

// writeServiceError переводит вид ошибки в HTTP статус
func (h *Handler) writeServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidSupply):
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrAlreadyExists):
		writeJSON(w, log, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrUnavailable):
		log.Error("storage unavailable", zap.Error(err))
		writeJSON(w, log, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable"})
	default:
		log.Error("unexpected service error", zap.Error(err))
		writeJSON(w, log, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// nameParam достаёт {name} из пути
// chi маршрутизирует по RawPath, если он есть, и тогда параметр приходит в экранированном виде
func nameParam(w http.ResponseWriter, r *http.Request, log *zap.Logger) (string, bool) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, true
	}

	unescaped, err := url.PathUnescape(name)
	if err != nil {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid supply name in path"})
		return "", false
	}
	return unescaped, true
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
