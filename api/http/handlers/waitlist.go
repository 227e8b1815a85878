package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumic/backend/api/http/presenter"
	"github.com/resumic/backend/pkg/waitlist"
)

type WaitlistHandler struct {
	uc waitlist.UseCase
}

func NewWaitlistHandler(uc waitlist.UseCase) *WaitlistHandler {
	return &WaitlistHandler{uc: uc}
}

type joinWaitlistRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Join adds a signup to the waitlist.
// @Summary Join the waitlist
// @Tags    waitlist
// @Accept  json
// @Produce json
// @Param   input body joinWaitlistRequest true "signup payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router  /waitlist [post]
func (h *WaitlistHandler) Join(c *fiber.Ctx) error {
	var req joinWaitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.JSON(c, http.StatusBadRequest, fiber.Map{"success": false, "message": "Name and email are required"})
	}
	err := h.uc.Join(c.Context(), req.Name, req.Email)
	switch {
	case errors.Is(err, waitlist.ErrInvalidEntry):
		return presenter.JSON(c, http.StatusBadRequest, fiber.Map{"success": false, "message": "Name and email are required"})
	case errors.Is(err, waitlist.ErrAlreadyJoined):
		return presenter.JSON(c, http.StatusConflict, fiber.Map{"success": false, "message": "You are already on the waitlist!"})
	case err != nil:
		return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{"success": false, "message": "Failed to join waitlist"})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true, "message": "Successfully joined the waitlist!"})
}

// Check reports whether an email is already on the waitlist.
// @Summary Check waitlist membership
// @Tags    waitlist
// @Produce json
// @Param   email query string true "email to check"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router  /waitlist/check [get]
func (h *WaitlistHandler) Check(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return presenter.JSON(c, http.StatusBadRequest, fiber.Map{"joined": false, "message": "Email is required"})
	}
	joined, err := h.uc.Joined(c.Context(), email)
	if err != nil {
		return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{"joined": false, "message": "Failed to check waitlist"})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"joined": joined})
}
