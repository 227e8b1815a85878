package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumic/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	authH *handlers.AuthHandler,
	healthH *handlers.HealthHandler,
	jobH *handlers.JobHandler,
	blogH *handlers.BlogHandler,
	guideH *handlers.GuideHandler,
	faqH *handlers.FAQHandler,
	waitlistH *handlers.WaitlistHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", healthH.Health)
	v1.Get("/ready", healthH.Ready)

	a := v1.Group("/auth")
	a.Post("/register", authH.Register)
	a.Post("/login", authH.Login)
	a.Get("/me", authMW, authH.Me)

	// Job board. Reads and the apply-click counter are public; static
	// routes must register before the :id wildcard.
	jobs := v1.Group("/jobs")
	jobs.Get("/", jobH.List)
	jobs.Get("/categories", jobH.Categories)
	jobs.Get("/stats", jobH.Stats)
	jobs.Get("/:id", jobH.GetByID)
	jobs.Post("/:jobId/apply-click", jobH.ApplyClick)
	jobs.Post("/", authMW, jobH.Create)
	jobs.Put("/:id", authMW, jobH.Update)
	jobs.Delete("/:id", authMW, jobH.Delete)

	// Content collections (public reads)
	b := v1.Group("/blog")
	b.Get("/", blogH.List)
	b.Get("/featured", blogH.Featured)
	b.Get("/categories", blogH.Categories)
	b.Get("/:slug", blogH.GetBySlug)

	g := v1.Group("/guides")
	g.Get("/", guideH.List)
	g.Get("/featured", guideH.Featured)
	g.Get("/categories", guideH.Categories)
	g.Get("/difficulties", guideH.Difficulties)
	g.Get("/:slug", guideH.GetBySlug)

	v1.Get("/faqs", faqH.List)

	w := v1.Group("/waitlist")
	w.Post("/", waitlistH.Join)
	w.Get("/check", waitlistH.Check)
}
