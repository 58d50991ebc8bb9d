package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
)

// SetupRoutes wires the HTTP surface. The middleware order inside /admin
// matters: the session is resolved first, CSRF is validated on mutating
// methods before any role logic runs, and the route guard decides last.
func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	scopeHandler *ScopeHandler,
	nurseryHandler *NurseryHandler,
	eventHandler *EventHandler,
	galleryHandler *GalleryHandler,
	newsletterHandler *NewsletterHandler,
	staffHandler *StaffHandler,
	activityHandler *ActivityHandler,
	contactHandler *ContactHandler,
	healthHandler *HealthHandler,
	sessionMiddleware fiber.Handler,
	csrfMiddleware fiber.Handler,
	loginRateLimit fiber.Handler,
	audit middleware.AuditRecorder,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	api := app.Group("/api/v1", sessionMiddleware)

	// Auth routes. Login and the password flows are pre-session and
	// CSRF-exempt; logout checks CSRF itself so a dead session can still
	// log out idempotently.
	auth := api.Group("/auth")
	auth.Post("/login", loginRateLimit, authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)
	auth.Get("/csrf-token", authHandler.CsrfToken)
	auth.Post("/forgot-password", loginRateLimit, authHandler.ForgotPassword)
	auth.Post("/reset-password", loginRateLimit, authHandler.ResetPassword)

	// Public marketing content
	api.Get("/nurseries", nurseryHandler.PublicList)
	api.Get("/nurseries/:nurseryId", nurseryHandler.PublicGet)
	api.Get("/nurseries/:nurseryId/events", eventHandler.PublicList)
	api.Get("/nurseries/:nurseryId/gallery", galleryHandler.PublicList)
	api.Get("/nurseries/:nurseryId/newsletters", newsletterHandler.PublicList)
	api.Post("/contact", contactHandler.Submit)

	// Admin surface
	admin := api.Group("/admin", csrfMiddleware)

	byNursery := middleware.NurseryFromParam("nurseryId")
	requireStaff := middleware.Guard(domain.RoleStaff, byNursery, audit)
	requireStaffNoTarget := middleware.Guard(domain.RoleStaff, nil, audit)
	requireNurseryAdmin := middleware.Guard(domain.RoleNurseryAdmin, nil, audit)
	requireNurseryAdminByNursery := middleware.Guard(domain.RoleNurseryAdmin, byNursery, audit)
	requireSuperAdmin := middleware.Guard(domain.RoleSuperAdmin, nil, audit)
	requireSuperAdminByNursery := middleware.Guard(domain.RoleSuperAdmin, byNursery, audit)
	requireSession := middleware.Guard("", nil, audit)

	// Nursery scope selector
	admin.Get("/scope", requireSession, scopeHandler.GetScope)
	admin.Put("/scope", requireSession, scopeHandler.SetScope)

	// Nursery registry (super_admin)
	admin.Post("/nurseries", requireSuperAdmin, nurseryHandler.Create)
	admin.Put("/nurseries/:nurseryId", requireSuperAdminByNursery, nurseryHandler.Update)
	admin.Delete("/nurseries/:nurseryId", requireSuperAdminByNursery, nurseryHandler.Delete)

	// Nursery-scoped content. Reads sit at the staff floor; mutations
	// require nursery_admin, both checked against the path nursery.
	nursery := admin.Group("/nurseries/:nurseryId", requireStaff)

	nursery.Get("/events", eventHandler.List)
	nursery.Get("/events/:id", eventHandler.Get)
	nursery.Post("/events", requireNurseryAdminByNursery, eventHandler.Create)
	nursery.Put("/events/:id", requireNurseryAdminByNursery, eventHandler.Update)
	nursery.Delete("/events/:id", requireNurseryAdminByNursery, eventHandler.Delete)

	nursery.Get("/gallery", galleryHandler.List)
	nursery.Post("/gallery", requireNurseryAdminByNursery, galleryHandler.Create)
	nursery.Put("/gallery/:id", requireNurseryAdminByNursery, galleryHandler.Update)
	nursery.Delete("/gallery/:id", requireNurseryAdminByNursery, galleryHandler.Delete)

	nursery.Get("/newsletters", newsletterHandler.List)
	nursery.Post("/newsletters", requireNurseryAdminByNursery, newsletterHandler.Create)
	nursery.Put("/newsletters/:id", requireNurseryAdminByNursery, newsletterHandler.Update)
	nursery.Delete("/newsletters/:id", requireNurseryAdminByNursery, newsletterHandler.Delete)

	nursery.Get("/staff", staffHandler.List)
	nursery.Post("/staff", requireNurseryAdminByNursery, staffHandler.Create)
	nursery.Put("/staff/:id", requireNurseryAdminByNursery, staffHandler.Update)
	nursery.Delete("/staff/:id", requireNurseryAdminByNursery, staffHandler.Delete)

	// Settings: reads at staff level, writes super_admin only
	admin.Get("/settings/:nurseryId", middleware.Guard(domain.RoleStaff, byNursery, audit), nurseryHandler.GetSettings)
	admin.Put("/settings/:nurseryId", middleware.Guard(domain.RoleSuperAdmin, byNursery, audit), nurseryHandler.UpdateSettings)

	// Activity logs, filtered by the session's resolved scope
	admin.Get("/activity-logs", requireStaffNoTarget, activityHandler.List)

	// Contact submissions (nursery_admin floor)
	admin.Get("/contact-submissions", requireNurseryAdmin, contactHandler.List)
	admin.Delete("/contact-submissions/:id", requireNurseryAdmin, contactHandler.Delete)
}
