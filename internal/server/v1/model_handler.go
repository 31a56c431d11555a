package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/assist-router/internal/registry"
	"github.com/nulzo/assist-router/internal/server/validator"
	"github.com/nulzo/assist-router/pkg/api"
)

// ModelHandler exposes the model registry over HTTP: listing,
// registration, updates, removal, and the default provider knob.
type ModelHandler struct {
	registry *registry.Registry
}

func NewModelHandler(r *registry.Registry) *ModelHandler {
	return &ModelHandler{registry: r}
}

func (h *ModelHandler) ListModels(c *gin.Context) {
	models := h.registry.List()

	if q := c.Query("capability"); q != "" {
		parsed, err := api.ParseCapability(q)
		if err != nil {
			_ = c.Error(api.BadRequestError(err.Error()))
			return
		}
		filtered := models[:0]
		for _, m := range models {
			if m.Supports(parsed) {
				filtered = append(filtered, m)
			}
		}
		models = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   models,
	})
}

func (h *ModelHandler) RegisterModel(c *gin.Context) {
	var cfg api.ModelConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		_ = c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	h.registry.Register(cfg)
	c.JSON(http.StatusCreated, cfg)
}

// UpdateModel replaces an existing model's configuration. The registry
// itself treats updates of unknown models as a no-op, so existence is
// checked here to give HTTP clients a proper 404.
func (h *ModelHandler) UpdateModel(c *gin.Context) {
	name := c.Param("name")

	var cfg api.ModelConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		_ = c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	if _, ok := h.registry.Get(name); !ok {
		_ = c.Error(api.NotFoundError(fmt.Sprintf("model %q is not registered", name)))
		return
	}

	h.registry.Update(name, cfg)
	updated, _ := h.registry.Get(name)
	c.JSON(http.StatusOK, updated)
}

func (h *ModelHandler) DeleteModel(c *gin.Context) {
	name := c.Param("name")

	if _, ok := h.registry.Get(name); !ok {
		_ = c.Error(api.NotFoundError(fmt.Sprintf("model %q is not registered", name)))
		return
	}

	h.registry.Remove(name)
	c.Status(http.StatusNoContent)
}

func (h *ModelHandler) GetDefaultProvider(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"provider": h.registry.DefaultProvider()})
}

func (h *ModelHandler) SetDefaultProvider(c *gin.Context) {
	var req api.DefaultProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	h.registry.SetDefaultProvider(req.Provider)
	c.JSON(http.StatusOK, gin.H{"provider": req.Provider})
}
