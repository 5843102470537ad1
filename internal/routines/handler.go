package routines

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routinesService interface {
	List(ctx context.Context, filter Filter) ([]Routine, error)
	Recommend(ctx context.Context, uid string) ([]Routine, error)
	Detail(ctx context.Context, id string) (*Routine, error)
	Upsert(ctx context.Context, routine Routine) (*Routine, error)
}

type Handler struct {
	service routinesService
}

func NewHandler(service routinesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	routinesRouter := router.PathPrefix("/routines").Subrouter()
	routinesRouter.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	routinesRouter.HandleFunc("", handler.HandleUpsert).Methods("POST", "OPTIONS").Name("upsert-routine")
	routinesRouter.HandleFunc("/recommended", handler.HandleRecommended).Methods("GET", "OPTIONS").Name("recommended-routines")
	routinesRouter.HandleFunc("/{id}", handler.HandleDetail).Methods("GET", "OPTIONS").Name("routine-detail")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	query := r.URL.Query()
	filter := Filter{
		Level:     query.Get("level"),
		Goals:     query["goal"],
		Locations: query["location"],
	}

	matched, err := handler.service.List(ctx, filter)
	if err != nil {
		log.Errorf("list routines: %s", err)
		http.Error(w, "failed to list routines", http.StatusInternalServerError)
		return
	}

	handler.writeRoutines(w, matched)
}

func (handler *Handler) HandleRecommended(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.recommended")
	defer span.End()

	uid, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	recommended, err := handler.service.Recommend(ctx, uid)
	if err != nil {
		log.Errorf("recommend routines for %s: %s", uid, err)
		http.Error(w, "failed to get recommended routines", http.StatusInternalServerError)
		return
	}

	handler.writeRoutines(w, recommended)
}

func (handler *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.detail")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, routine id empty", http.StatusBadRequest)
		return
	}

	routine, err := handler.service.Detail(ctx, id)
	if err != nil {
		log.Errorf("get routine %s: %s", id, err)
		http.Error(w, "failed to get routine", http.StatusInternalServerError)
		return
	}
	if routine == nil {
		log.Debugf("routine %s not found", id)
		http.Error(w, "routine not found", http.StatusNotFound)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal routine: %s", err)
		http.Error(w, "failed to marshal routine", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routineJson)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var routine Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		log.Tracef("upsert routine, unmarshal json params: %s", err)
		http.Error(w, "upsert routine failed", http.StatusBadRequest)
		return
	}

	if routine.Name == "" {
		http.Error(w, "error, routine name empty", http.StatusBadRequest)
		return
	}

	stored, err := handler.service.Upsert(ctx, routine)
	if err != nil {
		log.Errorf("upsert routine: %s", err)
		http.Error(w, "upsert routine failed", http.StatusInternalServerError)
		return
	}

	storedJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("marshal routine: %s", err)
		http.Error(w, "failed to marshal routine", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, storedJson, http.StatusCreated)
}

func (handler *Handler) writeRoutines(w http.ResponseWriter, routines []Routine) {
	routinesJson, err := json.Marshal(routines)
	if err != nil {
		log.Errorf("marshal routines: %s", err)
		http.Error(w, "failed to marshal routines", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routinesJson)
}
