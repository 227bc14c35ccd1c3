package handler

import (
	"errors"
	"net/http"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/login.
// 200 with the user record (password hash excluded); 401 on bad credentials.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, violations(err, false))
		return
	}

	user, err := s.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.log.Error("login failed", "email", body.Email, "error", err)
		respondInternal(w)
		return
	}

	respondOK(w, "Login successful", user)
}
