package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/resumic/backend/api/http/presenter"
	"github.com/resumic/backend/pkg/guide"
)

type GuideHandler struct {
	uc guide.UseCase
}

func NewGuideHandler(uc guide.UseCase) *GuideHandler { return &GuideHandler{uc: uc} }

// List returns a page of guides without body content.
// @Summary List guides
// @Tags    guides
// @Produce json
// @Param   page query int false "page number" default(1)
// @Param   limit query int false "page size" default(10)
// @Param   category query string false "category; 'All' means no filter"
// @Param   difficulty query string false "difficulty level"
// @Param   featured query string false "pass 'true' to only return featured guides"
// @Param   search query string false "full-text search"
// @Success 200 {object} guide.ListResult
// @Router  /guides [get]
func (h *GuideHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c, 1, 10)
	f := guide.Filter{
		Difficulty:   c.Query("difficulty"),
		FeaturedOnly: c.Query("featured") == "true",
		Search:       c.Query("search"),
	}
	if cat := c.Query("category"); cat != "" && cat != "All" {
		f.Category = cat
	}
	res, err := h.uc.List(c.Context(), f, page, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching guides")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Featured returns the most recent featured guide.
// @Summary Featured guide
// @Tags    guides
// @Produce json
// @Success 200 {object} guide.Guide
// @Router  /guides/featured [get]
func (h *GuideHandler) Featured(c *fiber.Ctx) error {
	g, err := h.uc.Featured(c.Context())
	if err != nil {
		if errors.Is(err, guide.ErrNotFound) {
			return presenter.JSON(c, http.StatusOK, nil)
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching featured guide")
	}
	return presenter.JSON(c, http.StatusOK, g)
}

// GetBySlug returns the full guide and counts the download.
// @Summary Get guide by slug
// @Tags    guides
// @Produce json
// @Param   slug path string true "guide slug"
// @Success 200 {object} guide.Guide
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /guides/{slug} [get]
func (h *GuideHandler) GetBySlug(c *fiber.Ctx) error {
	g, err := h.uc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, guide.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Guide not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching guide")
	}
	return presenter.JSON(c, http.StatusOK, g)
}

// Categories lists distinct guide categories.
// @Summary Guide categories
// @Tags    guides
// @Produce json
// @Success 200 {array} string
// @Router  /guides/categories [get]
func (h *GuideHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.Categories(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching categories")
	}
	if cats == nil {
		cats = []string{}
	}
	return presenter.JSON(c, http.StatusOK, cats)
}

// Difficulties lists distinct difficulty values.
// @Summary Guide difficulties
// @Tags    guides
// @Produce json
// @Success 200 {array} string
// @Router  /guides/difficulties [get]
func (h *GuideHandler) Difficulties(c *fiber.Ctx) error {
	diffs, err := h.uc.Difficulties(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching difficulties")
	}
	if diffs == nil {
		diffs = []string{}
	}
	return presenter.JSON(c, http.StatusOK, diffs)
}
