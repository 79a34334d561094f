package httpapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Admin   AdminSummary `json:"admin"`
}

type AddAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatedAdmin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddAdminResponse struct {
	Message string       `json:"message"`
	Admin   CreatedAdmin `json:"admin"`
}

var errInvalidCredentials = services.ErrUnauthorized("Invalid credentials")

func (s *Server) login(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[LoginRequest](req)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, services.ErrBadRequest("Email and password are required")
	}
	admin, err := s.Store.AdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !s.Tokens.VerifyPassword(in.Password, admin.PasswordHash) {
		return nil, errInvalidCredentials
	}
	token, _, err := s.Tokens.CreateAccessToken(*admin)
	if err != nil {
		return nil, err
	}
	return LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin:   AdminSummary{ID: admin.ID, Email: admin.Email, Name: admin.Name},
	}, nil
}

func (s *Server) addAdmin(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[AddAdminRequest](req)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, services.ErrBadRequest("Name, email, and password are required")
	}
	existing, err := s.Store.AdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAdminExists
	}
	hash, err := s.Tokens.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Email: email, Name: name, PasswordHash: hash}
	if err := s.Store.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, errAdminExists
		}
		return nil, err
	}
	return AddAdminResponse{
		Message: "Admin created successfully",
		Admin: CreatedAdmin{
			ID:        admin.ID,
			Email:     admin.Email,
			Name:      admin.Name,
			CreatedAt: admin.CreatedAt,
		},
	}, nil
}

var errAdminExists = services.ErrConflict("Admin with this email already exists")

func (s *Server) getAdmins(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.AdminByID(ctx, req.ID)
	}
	return s.Store.ListAdmins(ctx)
}
