package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studybuddy-dev/studybuddy/internal/middleware"
	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/service"
)

type SubjectResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newSubjectResponse(subject *models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          subject.ID,
		UserID:      subject.UserID,
		Name:        subject.Name,
		Description: subject.Description,
		CreatedAt:   subject.CreatedAt,
		UpdatedAt:   subject.UpdatedAt,
	}
}

type SubjectHandler struct {
	subjects *service.SubjectService
}

func NewSubjectHandler(subjects *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

func (h *SubjectHandler) Create(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input service.CreateSubjectInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	subject, err := h.subjects.Create(ctx.Request.Context(), userID, input)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondWithMessage(ctx, http.StatusCreated, "Subject created successfully", newSubjectResponse(subject))
}

func (h *SubjectHandler) List(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	subjects, err := h.subjects.List(ctx.Request.Context(), userID)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	response := make([]SubjectResponse, 0, len(subjects))

	for i := range subjects {
		response = append(response, newSubjectResponse(&subjects[i]))
	}

	respondList(ctx, response, len(response))
}

func (h *SubjectHandler) GetByID(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	subjectID, ok := pathID(ctx, "Invalid subject ID")
	if !ok {
		return
	}

	subject, err := h.subjects.GetByID(ctx.Request.Context(), userID, subjectID)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, newSubjectResponse(subject))
}

func (h *SubjectHandler) Update(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	subjectID, ok := pathID(ctx, "Invalid subject ID")
	if !ok {
		return
	}

	var input service.UpdateSubjectInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request")
		return
	}

	subject, err := h.subjects.Update(ctx.Request.Context(), userID, subjectID, input)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondWithMessage(ctx, http.StatusOK, "Subject updated successfully", newSubjectResponse(subject))
}

func (h *SubjectHandler) Delete(ctx *gin.Context) {
	userID, err := middleware.CurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	subjectID, ok := pathID(ctx, "Invalid subject ID")
	if !ok {
		return
	}

	if err := h.subjects.Delete(ctx.Request.Context(), userID, subjectID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	respondMessage(ctx, "Subject deleted successfully")
}

// pathID parses the :id route parameter, responding 400 on failure.
func pathID(ctx *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, message)
		return 0, false
	}
	return uint(id), true
}
