package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/resumic/backend/api/http/presenter"
	"github.com/resumic/backend/pkg/blog"
)

type BlogHandler struct {
	uc blog.UseCase
}

func NewBlogHandler(uc blog.UseCase) *BlogHandler { return &BlogHandler{uc: uc} }

// List returns a page of blog posts without body content.
// @Summary List blog posts
// @Tags    blog
// @Produce json
// @Param   page query int false "page number" default(1)
// @Param   limit query int false "page size" default(10)
// @Param   category query string false "category; 'All' means no filter"
// @Param   featured query string false "pass 'true' to only return featured posts"
// @Param   search query string false "full-text search"
// @Success 200 {object} blog.ListResult
// @Router  /blog [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c, 1, 10)
	f := blog.Filter{
		FeaturedOnly: c.Query("featured") == "true",
		Search:       c.Query("search"),
	}
	if cat := c.Query("category"); cat != "" && cat != "All" {
		f.Category = cat
	}
	res, err := h.uc.List(c.Context(), f, page, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching blog posts")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Featured returns the most recent featured post.
// @Summary Featured blog post
// @Tags    blog
// @Produce json
// @Success 200 {object} blog.Post
// @Router  /blog/featured [get]
func (h *BlogHandler) Featured(c *fiber.Ctx) error {
	p, err := h.uc.Featured(c.Context())
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return presenter.JSON(c, http.StatusOK, nil)
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching featured post")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// GetBySlug returns the full post and counts the view.
// @Summary Get blog post by slug
// @Tags    blog
// @Produce json
// @Param   slug path string true "post slug"
// @Success 200 {object} blog.Post
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	p, err := h.uc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Blog post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching blog post")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Categories lists distinct blog categories.
// @Summary Blog categories
// @Tags    blog
// @Produce json
// @Success 200 {array} string
// @Router  /blog/categories [get]
func (h *BlogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.Categories(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching categories")
	}
	if cats == nil {
		cats = []string{}
	}
	return presenter.JSON(c, http.StatusOK, cats)
}
