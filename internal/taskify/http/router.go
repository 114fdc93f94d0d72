package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/service"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/pkg/httpx"
	"github.com/aussiebroadwan/taskify/pkg/jwtx"
	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/aussiebroadwan/taskify/api/taskify" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics
	registry     *prometheus.Registry

	store             store.Store
	AccountService    *service.AccountService
	WorkspaceService  *service.WorkspaceService
	MembershipService *service.MembershipService
	ProjectService    *service.ProjectService
	SprintService     *service.SprintService
	IssueService      *service.IssueService
	CommentService    *service.CommentService
	DashboardService  *service.DashboardService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	registry *prometheus.Registry,
	metrics *metricsx.Metrics,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		registry:     registry,
		metrics:      metrics,
	}

	// metricsx must sit directly on the mux to see the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metricsx.HTTPMiddleware(r.metrics),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerWorkspaces()
	r.registerProjects()
	r.registerSprints()
	r.registerIssues()
	r.registerComments()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Taskify API
//	@version					0.1.0
//	@description				Project tracker organised into workspaces. Workspace access is granted by an accepted membership whose role (ADMIN, MEMBER or GUEST) decides what the caller may do.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskify
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured is the chain every authenticated route shares: verify the bearer
// token, then rate limit per user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.Middleware) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		limit,
	)
}

func (r *Router) registerAccounts() {
	h := &AccountHandler{AccountService: r.AccountService}

	// Credential endpoints - strict rate limit by IP
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword), httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("GET /auth/me", r.secured(h.HandleMe, httpx.RateLimitByUser(httpx.LenientLimit)))
	r.Mux.Handle("PATCH /auth/profile", r.secured(h.HandleUpdateProfile, httpx.RateLimitByUser(httpx.ModerateLimit)))
}

func (r *Router) registerWorkspaces() {
	h := &WorkspaceHandler{
		WorkspaceService:  r.WorkspaceService,
		MembershipService: r.MembershipService,
	}
	lenient := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("POST /workspaces", r.secured(h.HandleCreate, httpx.RateLimitByUser(httpx.ModerateLimit)))
	r.Mux.Handle("GET /workspaces", r.secured(h.HandleList, lenient))
	r.Mux.Handle("DELETE /workspaces/{workspaceId}", r.secured(h.HandleDelete, lenient))

	// Membership mutations are limited per user and workspace so one busy
	// workspace cannot starve an admin's others.
	r.Mux.Handle("GET /workspaces/{workspaceId}/members", r.secured(h.HandleListMembers, lenient))
	r.Mux.Handle("POST /workspaces/{workspaceId}/members/invite",
		r.secured(h.HandleInvite, httpx.RateLimitByUserAndPathValue(httpx.ModerateLimit, "workspaceId")))
	r.Mux.Handle("POST /workspaces/{workspaceId}/members/accept", r.secured(h.HandleAccept, lenient))
	r.Mux.Handle("POST /workspaces/{workspaceId}/members/decline", r.secured(h.HandleDecline, lenient))
	r.Mux.Handle("PATCH /workspaces/{workspaceId}/members/{userId}/role",
		r.secured(h.HandleUpdateRole, httpx.RateLimitByUserAndPathValue(httpx.ModerateLimit, "workspaceId")))
}

func (r *Router) registerProjects() {
	h := &ProjectHandler{ProjectService: r.ProjectService}
	lenient := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("POST /project", r.secured(h.HandleCreate, lenient))
	r.Mux.Handle("GET /project/workspace/{workspaceId}", r.secured(h.HandleList, lenient))
	r.Mux.Handle("GET /project/{projectId}", r.secured(h.HandleGet, lenient))
	r.Mux.Handle("PATCH /project/{projectId}", r.secured(h.HandleUpdate, lenient))
	r.Mux.Handle("DELETE /project/{projectId}", r.secured(h.HandleDelete, lenient))
}

func (r *Router) registerSprints() {
	h := &SprintHandler{SprintService: r.SprintService}
	lenient := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /api/projects/{projectId}/sprints", r.secured(h.HandleList, lenient))
	r.Mux.Handle("POST /api/projects/{projectId}/sprints", r.secured(h.HandleCreate, lenient))
	r.Mux.Handle("PATCH /api/sprints/{sprintId}", r.secured(h.HandleUpdate, lenient))
	r.Mux.Handle("DELETE /api/sprints/{sprintId}", r.secured(h.HandleDelete, lenient))
}

func (r *Router) registerIssues() {
	h := &IssueHandler{IssueService: r.IssueService}
	lenient := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /api/projects/{projectId}/issues", r.secured(h.HandleList, lenient))
	r.Mux.Handle("POST /api/issues", r.secured(h.HandleCreate, lenient))
	r.Mux.Handle("GET /api/issues/new", r.secured(h.HandleAssigned, lenient))
	r.Mux.Handle("GET /api/issues/{issueId}", r.secured(h.HandleGet, lenient))
	r.Mux.Handle("PATCH /api/issues/{issueId}", r.secured(h.HandleUpdate, lenient))
	r.Mux.Handle("DELETE /api/issues/{issueId}", r.secured(h.HandleDelete, lenient))
}

func (r *Router) registerComments() {
	h := &CommentHandler{CommentService: r.CommentService}
	lenient := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /comments/issue/{issueId}", r.secured(h.HandleList, lenient))
	r.Mux.Handle("POST /comments", r.secured(h.HandleCreate, lenient))
	r.Mux.Handle("GET /comments/new", r.secured(h.HandleRecent, lenient))
	r.Mux.Handle("PATCH /comments/{commentId}", r.secured(h.HandleUpdate, lenient))
	r.Mux.Handle("DELETE /comments/{commentId}", r.secured(h.HandleDelete, lenient))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}
	r.Mux.Handle("GET /dashboard", r.secured(h.HandleDashboard, httpx.RateLimitByUser(httpx.LenientLimit)))
}

func (r *Router) registerSystem() {
	// Probes and scrapes poll often; public limit by IP
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(metricsx.Handler(r.registry),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
