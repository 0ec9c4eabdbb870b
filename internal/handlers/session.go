package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studybuddy-dev/studybuddy/internal/middleware"
	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/service"
)

type SessionResponse struct {
	ID          uint      `json:"id"`
	SubjectID   uint      `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newSessionResponse(session *models.StudySession) SessionResponse {
	return SessionResponse{
		ID:          session.ID,
		SubjectID:   session.SubjectID,
		SubjectName: session.Subject.Name,
		Title:       session.Title,
		Description: session.Description,
		StartTime:   session.StartTime,
		EndTime:     session.EndTime,
		Status:      session.Status,
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}

type SessionHandler struct {
	sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Create(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input service.CreateSessionInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	session, err := h.sessions.Create(ctx.Request.Context(), userID, input)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondWithMessage(ctx, http.StatusCreated, "Study session created successfully", newSessionResponse(session))
}

func (h *SessionHandler) List(ctx *gin.Context) {
	h.list(ctx, ctx.Query("status"))
}

// ListByStatus serves the /sessions/status/:status route.
func (h *SessionHandler) ListByStatus(ctx *gin.Context) {
	h.list(ctx, ctx.Param("status"))
}

func (h *SessionHandler) list(ctx *gin.Context, status string) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	sessions, err := h.sessions.List(ctx.Request.Context(), userID, status)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	response := make([]SessionResponse, 0, len(sessions))

	for i := range sessions {
		response = append(response, newSessionResponse(&sessions[i]))
	}

	respondList(ctx, response, len(response))
}

func (h *SessionHandler) GetByID(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	sessionID, ok := pathID(ctx, "Invalid session ID")
	if !ok {
		return
	}

	session, err := h.sessions.GetByID(ctx.Request.Context(), userID, sessionID)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, newSessionResponse(session))
}

func (h *SessionHandler) Update(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	sessionID, ok := pathID(ctx, "Invalid session ID")
	if !ok {
		return
	}

	var input service.UpdateSessionInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	session, err := h.sessions.Update(ctx.Request.Context(), userID, sessionID, input)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondWithMessage(ctx, http.StatusOK, "Study session updated successfully", newSessionResponse(session))
}

func (h *SessionHandler) Delete(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	sessionID, ok := pathID(ctx, "Invalid session ID")
	if !ok {
		return
	}

	if err := h.sessions.Delete(ctx.Request.Context(), userID, sessionID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondMessage(ctx, "Study session deleted successfully")
}
