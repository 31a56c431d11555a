package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/assist-router/internal/server/validator"
	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/internal/store/model"
	"github.com/nulzo/assist-router/pkg/api"
)

// SettingsHandler manages stored provider credentials. Keys are write
// only; reads report presence via has_key and never echo the secret.
type SettingsHandler struct {
	repo store.Repository
}

func NewSettingsHandler(repo store.Repository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) GetProvider(c *gin.Context) {
	provider := c.Param("provider")

	setting, err := h.repo.Settings().Get(c.Request.Context(), provider)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(api.NotFoundError(fmt.Sprintf("no settings stored for provider %q", provider)))
			return
		}
		_ = c.Error(api.InternalError("Failed to load provider settings", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":   setting.Provider,
		"endpoint":   setting.Endpoint,
		"has_key":    setting.HasKey(),
		"updated_at": setting.UpdatedAt,
	})
}

func (h *SettingsHandler) PutProvider(c *gin.Context) {
	provider := c.Param("provider")
	if _, err := api.ParseProvider(provider); err != nil {
		_ = c.Error(api.BadRequestError(err.Error()))
		return
	}

	var req api.ProviderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	setting := &model.ProviderSetting{
		Provider:  provider,
		APIKey:    req.APIKey,
		Endpoint:  req.Endpoint,
		UpdatedAt: time.Now().UTC(),
	}

	if err := h.repo.Settings().Upsert(c.Request.Context(), setting); err != nil {
		_ = c.Error(api.InternalError("Failed to store provider settings", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": provider,
		"has_key":  setting.HasKey(),
	})
}
