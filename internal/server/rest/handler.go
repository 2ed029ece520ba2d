package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/foodhub/internal/common"
	"github.com/dmitrijs2005/foodhub/internal/server/users"
	"github.com/go-playground/validator/v10"
)

const maxBody = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

type signUpRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type oauthRequest struct {
	Provider string `json:"provider"`
	Token    string `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *HTTPServer) Food(w http.ResponseWriter, r *http.Request) {
	menu := s.menu
	if menu == nil {
		menu = []string{}
	}
	writeJSON(w, http.StatusOK, menu)
}

func (s *HTTPServer) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name, a valid email and password are required")
		return
	}

	token, err := s.users.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		if errors.Is(err, users.ErrPasswordTooLong) {
			writeError(w, http.StatusBadRequest, "password must be at most 72 bytes")
			return
		}
		s.logger.Error(r.Context(), "sign up failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", req.Email)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *HTTPServer) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := s.users.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "sign in failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *HTTPServer) OAuth(w http.ResponseWriter, r *http.Request) {
	var req oauthRequest
	if !decode(w, r, &req) {
		return
	}

	token, err := s.users.OAuth(r.Context(), req.Provider, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUnknownProvider):
			writeError(w, http.StatusNotFound, "unknown provider")
		case errors.Is(err, common.ErrInvalidToken):
			writeError(w, http.StatusUnauthorized, "invalid provider token")
		default:
			s.logger.Error(r.Context(), "oauth exchange failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// decode reads a JSON body into v, answering 400 itself when it cannot.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
