package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/logging"
	"github.com/dmitrijs2005/taskvault/internal/server/services"
)

// AuthService is the part of the user service the auth endpoints need.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

type AuthHandler struct {
	service AuthService
	log     logging.Logger
}

func NewAuthHandler(service AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Unexpected error during registration")
		return
	}

	msgs := validate([]rule{
		{value: req.Email, required: true, requiredMsg: "Email is required", email: true, emailMsg: "Invalid email format"},
		{value: req.Password, required: true, requiredMsg: "Password is required", minLen: 6, minLenMsg: "Password must be at least 6 characters"},
		{value: req.Name, required: true, requiredMsg: "Name is required"},
	})
	if len(msgs) > 0 {
		writeError(w, http.StatusBadRequest, msgs...)
		return
	}

	res, err := h.service.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		h.log.Error(r.Context(), "registration failed", "error", err)
		writeError(w, http.StatusBadRequest, "Unexpected error during registration")
		return
	}

	writeSuccessWithToken(w, http.StatusCreated, "User registered successfully", newUserView(res.User), res.Token)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Unexpected error during login")
		return
	}

	msgs := validate([]rule{
		{value: req.Email, required: true, requiredMsg: "Email is required", email: true, emailMsg: "Invalid email format"},
		{value: req.Password, required: true, requiredMsg: "Password is required"},
	})
	if len(msgs) > 0 {
		writeError(w, http.StatusBadRequest, msgs...)
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusBadRequest, "Unexpected error during login")
		return
	}

	writeSuccessWithToken(w, http.StatusOK, "Login successful", newUserView(res.User), res.Token)
}
