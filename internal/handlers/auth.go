package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studybuddy-dev/studybuddy/internal/auth"
	"github.com/studybuddy-dev/studybuddy/internal/middleware"
	"github.com/studybuddy-dev/studybuddy/internal/service"
	"github.com/studybuddy-dev/studybuddy/internal/types"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	accounts *service.AccountService
	tokens   *auth.Tokens
}

func NewAuthHandler(accounts *service.AccountService, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Please provide name, email and a password of at least 8 characters")
		return
	}

	user, err := h.accounts.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(ctx, http.StatusBadRequest, "Email already exists")
			return
		}
		log.Error().Err(err).Msg("Failed to register user")
		respondError(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)

	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token")
		respondError(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	respondData(ctx, http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.accounts.Login(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(ctx, http.StatusBadRequest, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("Failed to log in user")
		respondError(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)

	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token")
		respondError(ctx, http.StatusInternalServerError, "Server error")
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := middleware.CurrentUser(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
	})
}
