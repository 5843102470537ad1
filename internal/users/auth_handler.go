package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jcmateus/kalisfit/internal/middleware"
	"github.com/jcmateus/kalisfit/internal/telemetry/metrics"
	"github.com/jcmateus/kalisfit/internal/telemetry/tracing"
	"github.com/jcmateus/kalisfit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_handler_mocks_test.go -package=users_test

type credentialsRepo interface {
	Create(ctx context.Context, profile UserProfile, passwordHash string) error
	GetWithCredentials(ctx context.Context, email string) (*UserProfile, string, error)
}

type sessions interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (token string, err error)
	Logout(ctx context.Context, token string) (bool, error)
}

type AuthHandler struct {
	repo     credentialsRepo
	sessions sessions
}

func NewAuthHandler(repo credentialsRepo, sessions sessions) *AuthHandler {
	return &AuthHandler{
		repo:     repo,
		sessions: sessions,
	}
}

func (handler *AuthHandler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	authRouter := router.PathPrefix("/a").Subrouter()
	authRouter.Use(middleware.RateLimit(rateLimiter, "auth", loginAllowedPerMin, metricsManager))
	authRouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, failed to hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	profile := UserProfile{
		UID:               uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		RegisteredAt:      time.Now(),
		Goals:             []string{},
		TrainingLocations: []string{},
		Badges:            []string{},
	}

	if err := handler.repo.Create(ctx, profile, passwordHash); err != nil {
		log.Errorf("register, failed to create profile: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.sessions.Login(ctx, profile.UID, time.Now())
	if err != nil {
		log.Errorf("register, failed to create session: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", profile.UID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token":"%s","uid":"%s"}`, token, profile.UID))
}

func (handler *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	profile, passwordHash, err := handler.repo.GetWithCredentials(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "login failed", http.StatusUnauthorized)
			return
		}
		log.Errorf("login, failed to get credentials: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, passwordHash) {
		log.Warnf("login failed for %s: wrong password", req.Email)
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	token, err := handler.sessions.Login(ctx, profile.UID, time.Now())
	if err != nil {
		log.Errorf("login, failed to create session: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("user logged in: %s", profile.UID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token":"%s","uid":"%s"}`, token, profile.UID))
}

func (handler *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get(middleware.AuthTokenHeader)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
