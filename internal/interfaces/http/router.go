package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobforge/jobwork-api/internal/application/auth"
	"github.com/jobforge/jobwork-api/internal/application/order"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	RFQUC          *rfq.UseCase
	OrderUC        *order.UseCase
	CompanyUC      *usecase.CompanyUseCase
	SupplierUC     *usecase.SupplierUseCase
	SKUUC          *usecase.SKUUseCase
	DocumentUC     *usecase.DocumentUseCase
	NotificationUC *usecase.NotificationUseCase
	Auth           AuthConfig
}

// Router registers the API routes. Everything under /api/protected goes
// through the auth middleware; role gates sit on the individual groups.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// SKU catalogue (public, read-only)
	skus := api.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Get("/", skuHandler.List)
	skus.Get("/:id", skuHandler.GetByID)

	// Protected routes (Bearer token, caller resolved from the store)
	protected := api.Group("/protected", AuthMiddleware(deps.Auth))

	// Company profile (any authenticated caller with a company)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.GetMine)
	protected.Put("/company", companyHandler.UpdateMine)

	// Supplier capability profile
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	supplier := protected.Group("/supplier", RequireRole(entity.RoleSupplier))
	supplier.Get("/profile", supplierHandler.GetProfile)
	supplier.Put("/profile", supplierHandler.UpsertProfile)

	// RFQs (listing and detail are role-scoped inside the use case)
	rfqHandler := NewRFQHandler(deps.RFQUC)
	rfqs := protected.Group("/rfqs")
	rfqs.Post("/", RequireRole(entity.RoleBuyer), rfqHandler.Create)
	rfqs.Get("/", rfqHandler.List)
	rfqs.Get("/:id", rfqHandler.Get)
	rfqs.Post("/:id/submit", RequireRole(entity.RoleBuyer), rfqHandler.Submit)
	rfqs.Post("/:id/cancel", RequireRole(entity.RoleBuyer, entity.RoleAdmin), rfqHandler.Cancel)

	// Invites (supplier side)
	inviteHandler := NewInviteHandler(deps.RFQUC)
	invites := protected.Group("/invites", RequireRole(entity.RoleSupplier))
	invites.Get("/", inviteHandler.List)
	invites.Post("/:id/decline", inviteHandler.Decline)

	// Quotes (supplier side)
	quoteHandler := NewQuoteHandler(deps.RFQUC)
	quotes := protected.Group("/quotes", RequireRole(entity.RoleSupplier))
	quotes.Post("/", quoteHandler.Submit)
	quotes.Get("/", quoteHandler.List)

	// Offers (buyer side: only published offers are visible)
	offerHandler := NewOfferHandler(deps.RFQUC)
	offers := protected.Group("/offers", RequireRole(entity.RoleBuyer))
	offers.Get("/", offerHandler.List)
	offers.Post("/:id/accept", offerHandler.Accept)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders", RequireRole(entity.RoleBuyer, entity.RoleAdmin))
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Get("/:id/confirmation.pdf", orderHandler.ConfirmationPDF)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Documents
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	protected.Post("/documents", documentHandler.Upload)
	protected.Get("/documents", documentHandler.List)

	// Notifications
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	protected.Get("/notifications", notificationHandler.List)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	// Admin curation surface
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Post("/rfqs/:id/review", rfqHandler.MarkUnderReview)
	admin.Put("/rfqs/:id/status", rfqHandler.OverrideStatus)
	admin.Get("/rfqs/:id/invites", inviteHandler.ListByRFQ)
	admin.Get("/rfqs/:id/quotes", quoteHandler.ListByRFQ)
	admin.Get("/rfqs/:id/offers", offerHandler.ListByRFQ)
	admin.Post("/invites", inviteHandler.InviteSuppliers)
	admin.Post("/offers", offerHandler.Compose)
	admin.Post("/offers/:id/publish", offerHandler.Publish)
	admin.Post("/orders/:id/advance", orderHandler.RecordAdvance)
	admin.Post("/orders/:id/confirm", orderHandler.Confirm)
	admin.Post("/orders/:id/updates", orderHandler.AddUpdate)
	admin.Post("/orders/:id/ship", orderHandler.Ship)
	admin.Post("/orders/:id/deliver", orderHandler.Deliver)
	admin.Post("/orders/:id/recalculate", orderHandler.Recalculate)
	admin.Put("/suppliers/:id/verify", supplierHandler.Verify)
}
