package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/rafaelgavarron/Fintech/docs"
	"github.com/rafaelgavarron/Fintech/internal/api/handler"
	"github.com/rafaelgavarron/Fintech/internal/api/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health       *handler.HealthHandler
	User         *handler.UserHandler
	Organization *handler.OrganizationHandler
	Member       *handler.MemberHandler
	Role         *handler.RoleHandler
	Expense      *handler.TransactionHandler
	Income       *handler.TransactionHandler
	Investment   *handler.InvestmentHandler
	Goal         *handler.GoalHandler
	BankAccount  *handler.BankAccountHandler
	Sync         *handler.SyncHandler
}

// NewRouter assembles the echo instance: global middleware, probes, metrics,
// swagger, and the authenticated /api surface.
func NewRouter(h Handlers, jwtSecret, adminToken string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("finpath"))

	e.GET("/health/live", h.Health.Live)
	e.GET("/health/ready", h.Health.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Registration, login, and email verification run unauthenticated.
	e.POST("/api/users/register", h.User.Register)
	e.POST("/api/users/login", h.User.Login)
	e.POST("/api/users/verification-code", h.User.RequestVerification)
	e.POST("/api/users/verify", h.User.ConfirmVerification)

	g := e.Group("/api", middleware.Auth(jwtSecret, adminToken))
	admin := middleware.AdminOnly()

	users := g.Group("/users")
	users.GET("", h.User.List)
	users.GET("/:id", h.User.Get)
	users.GET("/email/:email", h.User.GetByEmail)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", h.User.Delete, admin)

	orgs := g.Group("/organizations")
	orgs.GET("", h.Organization.List)
	orgs.GET("/active", h.Organization.ListActive)
	orgs.GET("/:id", h.Organization.Get)
	orgs.POST("", h.Organization.Create)
	orgs.PUT("/:id", h.Organization.Update)
	orgs.DELETE("/:id", h.Organization.Delete, admin)

	members := g.Group("/members")
	members.GET("", h.Member.List)
	members.GET("/:id", h.Member.Get)
	members.GET("/organization/:organizationId", h.Member.ByOrganization)
	members.GET("/user/:userId", h.Member.ByUser)
	members.GET("/user/:userId/organization/:organizationId", h.Member.ByUserAndOrganization)
	members.POST("", h.Member.Create)
	members.PUT("/:id/role", h.Member.UpdateRole)
	members.DELETE("/:id", h.Member.Delete, admin)

	roles := g.Group("/roles")
	roles.GET("", h.Role.List)
	roles.GET("/:id", h.Role.Get)
	roles.GET("/name/:name", h.Role.GetByName)
	roles.POST("", h.Role.Create, admin)

	registerFlowRoutes(g.Group("/expenses"), h.Expense, admin)
	registerFlowRoutes(g.Group("/incomes"), h.Income, admin)

	investments := g.Group("/investments")
	investments.GET("", h.Investment.List)
	investments.GET("/:id", h.Investment.Get)
	investments.GET("/organization/:organizationId", h.Investment.ByOrganization)
	investments.GET("/organization/:organizationId/total", h.Investment.TotalByOrganization)
	investments.GET("/member/:memberId", h.Investment.ByMember)
	investments.POST("", h.Investment.Create)
	investments.PUT("/:id", h.Investment.Update)
	investments.DELETE("/:id", h.Investment.Delete)

	goals := g.Group("/goals")
	goals.GET("", h.Goal.List)
	goals.GET("/:id", h.Goal.Get)
	goals.GET("/organization/:organizationId", h.Goal.ByOrganization)
	goals.POST("", h.Goal.Create)
	goals.PUT("/:id", h.Goal.Update)
	goals.DELETE("/:id", h.Goal.Delete)

	contributions := g.Group("/goals-contributions")
	contributions.GET("/goal/:goalId", h.Goal.Contributions)
	contributions.GET("/goal/:goalId/total", h.Goal.ContributionTotal)
	contributions.POST("", h.Goal.Contribute)

	accounts := g.Group("/bank-accounts")
	accounts.GET("", h.BankAccount.List)
	accounts.GET("/:id", h.BankAccount.Get)
	accounts.GET("/organization/:organizationId", h.BankAccount.ByOrganization)
	accounts.GET("/organization/:organizationId/connected", h.BankAccount.Connected)
	accounts.GET("/member/:memberId", h.BankAccount.ByMember)
	accounts.POST("/connect", h.BankAccount.Connect)
	accounts.DELETE("/:id", h.BankAccount.Disconnect)

	g.POST("/bank-transactions", h.Sync.Ingest, admin)

	return e
}

func registerFlowRoutes(grp *echo.Group, h *handler.TransactionHandler, admin echo.MiddlewareFunc) {
	grp.GET("", h.List)
	grp.GET("/:id", h.Get)
	grp.GET("/organization/:organizationId", h.ByOrganization)
	grp.GET("/organization/:organizationId/total", h.TotalByOrganization)
	grp.GET("/organization/:organizationId/categories/totals", h.CategoryTotals)
	grp.GET("/organization/:organizationId/category/:category", h.ByCategory)
	grp.GET("/organization/:organizationId/category/:category/total", h.TotalByCategory)
	grp.POST("", h.Create)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
}
