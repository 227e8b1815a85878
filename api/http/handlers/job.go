package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumic/backend/api/http/presenter"
	"github.com/resumic/backend/pkg/job"
)

type JobHandler struct {
	uc job.UseCase
}

func NewJobHandler(uc job.UseCase) *JobHandler { return &JobHandler{uc: uc} }

// parseJobFilter builds the typed filter from query parameters. The work
// arrangement flags only engage on the literal "true": any other value,
// including "false", leaves the field unconstrained.
func parseJobFilter(c *fiber.Ctx) job.Filter {
	return job.Filter{
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		Location:        c.Query("location"),
		EmploymentType:  c.Query("employmentType"),
		ExperienceLevel: c.Query("experienceLevel"),
		RemoteOnly:      c.Query("isRemote") == "true",
		HybridOnly:      c.Query("isHybrid") == "true",
		OnsiteOnly:      c.Query("isOnsite") == "true",
	}
}

// List returns a page of active job listings.
// @Summary List job listings
// @Tags    jobs
// @Produce json
// @Param   page query int false "page number" default(1)
// @Param   limit query int false "page size" default(3)
// @Param   search query string false "full-text search"
// @Param   category query string false "category"
// @Param   location query string false "location substring"
// @Param   employmentType query string false "employment type"
// @Param   experienceLevel query string false "experience level"
// @Param   isRemote query string false "pass 'true' to only return remote listings"
// @Param   isHybrid query string false "pass 'true' to only return hybrid listings"
// @Param   isOnsite query string false "pass 'true' to only return onsite listings"
// @Success 200 {object} job.Page
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c, 1, 3)
	res, err := h.uc.List(c.Context(), parseJobFilter(c), page, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching jobs")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// GetByID returns a single listing, active or not.
// @Summary Get job listing by ID
// @Tags    jobs
// @Produce json
// @Param   id path string true "job ID (UUID)"
// @Success 200 {object} job.Listing
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// Unresolvable ids behave the same as missing records.
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	}
	l, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching job")
	}
	return presenter.JSON(c, http.StatusOK, l)
}

// Create persists a new listing.
// @Summary Create job listing
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body job.Listing true "job listing"
// @Security BearerAuth
// @Success 201 {object} job.Listing
// @Failure 400 {object} nil "validation failure, no body"
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var l job.Listing
	if err := c.BodyParser(&l); err != nil {
		return c.SendStatus(http.StatusBadRequest)
	}
	created, err := h.uc.Create(c.Context(), l)
	if err != nil {
		// Validation failures intentionally carry no body; the web client
		// relies on the bare status code.
		return c.SendStatus(http.StatusBadRequest)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// Update applies a partial update and re-validates the merged record.
// @Summary Update job listing
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "job ID (UUID)"
// @Param   input body job.Patch true "fields to replace"
// @Security BearerAuth
// @Success 200 {object} job.Listing
// @Failure 400 {object} nil "validation failure, no body"
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	}
	var p job.Patch
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(http.StatusBadRequest)
	}
	updated, err := h.uc.Update(c.Context(), id, p)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, job.ErrValidation):
			return c.SendStatus(http.StatusBadRequest)
		default:
			return c.SendStatus(http.StatusBadRequest)
		}
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// Delete hard-removes a listing.
// @Summary Delete job listing
// @Tags    jobs
// @Produce json
// @Param   id path string true "job ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error deleting job")
	}
	return presenter.Message(c, http.StatusOK, "Job deleted successfully")
}

// ApplyClick records an outbound apply click. Public on purpose: it fires
// when a visitor follows the application link.
// @Summary Increment apply click counter
// @Tags    jobs
// @Produce json
// @Param   jobId path string true "job ID (UUID)"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{jobId}/apply-click [post]
func (h *JobHandler) ApplyClick(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "Job not found")
	}
	l, err := h.uc.RecordApplyClick(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error incrementing apply click count")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":         true,
		"message":         "Apply click count incremented successfully",
		"applyClickCount": l.ApplyClickCount,
	})
}

// Categories lists distinct category values across all listings.
// @Summary List job categories
// @Tags    jobs
// @Produce json
// @Success 200 {array} string
// @Router  /jobs/categories [get]
func (h *JobHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.Categories(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching job categories")
	}
	return presenter.JSON(c, http.StatusOK, cats)
}

// Stats returns the aggregate snapshot over active listings.
// @Summary Job listing statistics
// @Tags    jobs
// @Produce json
// @Success 200 {object} job.Stats
// @Router  /jobs/stats [get]
func (h *JobHandler) Stats(c *fiber.Ctx) error {
	st, err := h.uc.Stats(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching job statistics")
	}
	return presenter.JSON(c, http.StatusOK, st)
}
