// Package httpapi exposes the backend over JSON/HTTP using gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/server/auth"
	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
	"github.com/dmitrijs2005/candidatetracker/internal/server/services"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	Register(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(token string) (*auth.Claims, error)
}

type CandidateService interface {
	Create(ctx context.Context, c candidate.Candidate, submittedBy string) (candidate.Candidate, error)
	List(ctx context.Context) ([]candidate.Candidate, error)
	MarkViewed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ResumeUploadURL(ctx context.Context, id string, who *auth.Claims) (string, error)
	ConfirmResume(ctx context.Context, id string, who *auth.Claims) error
}

// Handler serves the API routes.
type Handler struct {
	users      UserService
	candidates CandidateService
}

func NewHandler(users UserService, candidates CandidateService) *Handler {
	return &Handler{users: users, candidates: candidates}
}

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// fail maps service errors to responses. Unknown errors become 500 and are
// attached to the context for the request log.
func fail(c *gin.Context, err error) {
	var verr *candidate.ValidationError
	var bad *services.BadRequestError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Validation failed",
			"errors": verr.Fields,
		})
	case errors.As(err, &bad):
		detail(c, http.StatusBadRequest, bad.Detail)
	case errors.Is(err, common.ErrorNotFound):
		detail(c, http.StatusNotFound, "Candidate not found")
	case errors.Is(err, common.ErrorForbidden):
		detail(c, http.StatusForbidden, "Not authorized")
	default:
		_ = c.Error(err)
		detail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if errors.Is(err, common.ErrorAlreadyExists) {
		detail(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: u.ID, Email: u.Email, Role: u.Role})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	u, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, common.ErrorUnauthorized) {
		detail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":  userResponse{ID: u.ID, Name: u.DisplayName(), Email: u.Email, Role: u.Role},
		"token": token,
	})
}

func (h *Handler) ListCandidates(c *gin.Context) {
	list, err := h.candidates.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateCandidate(c *gin.Context) {
	var in candidate.Candidate
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	out, err := h.candidates.Create(c.Request.Context(), in, claims(c).UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) MarkViewed(c *gin.Context) {
	if err := h.candidates.MarkViewed(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate marked as viewed"})
}

func (h *Handler) DeleteCandidate(c *gin.Context) {
	if err := h.candidates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResumeUploadURL(c *gin.Context) {
	url, err := h.candidates.ResumeUploadURL(c.Request.Context(), c.Param("id"), claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url})
}

func (h *Handler) ConfirmResume(c *gin.Context) {
	if err := h.candidates.ConfirmResume(c.Request.Context(), c.Param("id"), claims(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
