package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/resumic/backend/api/http/presenter"
	"github.com/resumic/backend/pkg/faq"
)

type FAQHandler struct {
	uc faq.UseCase
}

func NewFAQHandler(uc faq.UseCase) *FAQHandler { return &FAQHandler{uc: uc} }

// List returns FAQs in display order.
// @Summary List FAQs
// @Tags    faqs
// @Produce json
// @Param   page query int false "page number" default(1)
// @Param   limit query int false "page size" default(50)
// @Param   category query string false "category; 'All' means no filter"
// @Param   search query string false "full-text search"
// @Success 200 {object} faq.ListResult
// @Router  /faqs [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c, 1, 50)
	f := faq.Filter{Search: c.Query("search")}
	if cat := c.Query("category"); cat != "" && cat != "All" {
		f.Category = cat
	}
	res, err := h.uc.List(c.Context(), f, page, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching FAQs")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
