package progress

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jcmateus/kalisfit/internal/auth"
	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"
	"github.com/jcmateus/kalisfit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Record(ctx context.Context, uid string, record Record) (*Record, error)
	History(ctx context.Context, uid string) ([]Record, WeeklySummary, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/progress", handler.HandleRecord).Methods("POST", "OPTIONS").Name("record-progress")
	router.HandleFunc("/progress", handler.HandleHistory).Methods("GET", "OPTIONS").Name("progress-history")
}

type historyResponse struct {
	Records       []Record      `json:"records"`
	WeeklySummary WeeklySummary `json:"weeklySummary"`
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.record")
	defer span.End()

	uid, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("record progress, unmarshal json params: %s", err)
		http.Error(w, "record progress failed", http.StatusBadRequest)
		return
	}

	stored, err := handler.service.Record(ctx, uid, record)
	if err != nil {
		log.Errorf("record progress for %s: %s", uid, err)
		http.Error(w, "record progress failed", http.StatusInternalServerError)
		return
	}

	storedJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("marshal progress record: %s", err)
		http.Error(w, "failed to marshal progress record", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, storedJson, http.StatusCreated)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.history")
	defer span.End()

	uid, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	records, summary, err := handler.service.History(ctx, uid)
	if err != nil {
		log.Errorf("get progress history for %s: %s", uid, err)
		http.Error(w, "failed to get progress history", http.StatusInternalServerError)
		return
	}

	responseJson, err := json.Marshal(historyResponse{
		Records:       records,
		WeeklySummary: summary,
	})
	if err != nil {
		log.Errorf("marshal progress history: %s", err)
		http.Error(w, "failed to marshal progress history", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, responseJson)
}
