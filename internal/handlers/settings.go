package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/middleware"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// skillList accepts either a JSON array or the comma separated text field.
type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return errors.New("skills must be a list or a comma separated string")
	}
	*s = services.SplitSkills(csv)
	return nil
}

type profileRequest struct {
	Name        *string   `json:"name"`
	Avatar      *string   `json:"avatar"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Title       *string   `json:"title"`
	Skills      skillList `json:"skills"`
	HourlyRate  *float64  `json:"hourly_rate"`
	Company     *string   `json:"company"`
	Industry    *string   `json:"industry"`
	Website     *string   `json:"website"`
}

func (r profileRequest) input() services.UpdateProfileInput {
	return services.UpdateProfileInput{
		Name:        r.Name,
		Avatar:      r.Avatar,
		Description: r.Description,
		Location:    r.Location,
		Title:       r.Title,
		Skills:      r.Skills,
		HourlyRate:  r.HourlyRate,
		Company:     r.Company,
		Industry:    r.Industry,
		Website:     r.Website,
	}
}

// refreshSession keeps the session's copy of the user in step with the
// stored record. A stale session only loses the cached copy.
func refreshSession(c *gin.Context, user *dto.UserDTO) {
	store, ok := middleware.GetSessionStore(c)
	if !ok {
		return
	}
	if err := store.Refresh(*user); err != nil {
		logger.L().Warn("Failed to refresh session", zap.String("user_id", user.ID), zap.Error(err))
	}
}

func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	h.saveProfile(c, h.settingsService.UpdateProfile)
}

// SetupProfile is the first-run profile form
func (h *SettingsHandler) SetupProfile(c *gin.Context) {
	h.saveProfile(c, h.settingsService.SetupProfile)
}

func (h *SettingsHandler) saveProfile(c *gin.Context, save func(string, services.UpdateProfileInput) (*dto.UserDTO, error)) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req profileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := save(userID, req.input())
	if err != nil {
		respondSettingsError(c, err)
		return
	}
	refreshSession(c, user)
	c.JSON(http.StatusOK, user)
}

// UpdateAccount changes the email and/or password
func (h *SettingsHandler) UpdateAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateAccountRequest struct {
		Email           string `json:"email"`
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.settingsService.UpdateAccount(userID, services.UpdateAccountInput{
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondSettingsError(c, err)
		return
	}
	refreshSession(c, user)
	c.JSON(http.StatusOK, user)
}

func (h *SettingsHandler) GetNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	settings, err := h.settingsService.Notifications(userID)
	if err != nil {
		respondSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req models.NotificationSettings
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdateNotifications(userID, req)
	if err != nil {
		respondSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func respondSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.BadRequest(c, "Passwords do not match")
	case errors.Is(err, services.ErrProfileIncomplete),
		errors.Is(err, services.ErrNoAccountChanges):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrWrongPassword):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "An account with this email already exists")
	default:
		respondCommonError(c, err)
	}
}
