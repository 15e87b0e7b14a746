package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/cradlekit/cradle/internal/profile"
	"github.com/cradlekit/cradle/plugin/agent"
	"github.com/cradlekit/cradle/plugin/ai"
	"github.com/cradlekit/cradle/plugin/storage"
	"github.com/cradlekit/cradle/server/auth"
	"github.com/cradlekit/cradle/server/finops"
	"github.com/cradlekit/cradle/server/middleware"
	"github.com/cradlekit/cradle/server/service/autotask"
	"github.com/cradlekit/cradle/store"
)

// APIV1Service wires the REST surface: the AutoTask endpoint, per-domain
// CRUD and media serving.
type APIV1Service struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	AutoTaskService *autotask.Service
	Storage         *storage.LocalStorage
	CostMonitor     *finops.CostMonitor

	authenticator *auth.Authenticator
	rateLimiter   *middleware.RateLimiter
}

// NewAPIV1Service creates the REST service. The AutoTask pipeline is only
// wired when an LLM provider is configured; without it the endpoint
// responds with service unavailable.
func NewAPIV1Service(secret string, profile *profile.Profile, store *store.Store) (*APIV1Service, error) {
	localStorage := storage.NewLocalStorage(profile.Data)

	service := &APIV1Service{
		Secret:        secret,
		Profile:       profile,
		Store:         store,
		Storage:       localStorage,
		authenticator: auth.NewAuthenticator(store, secret),
		rateLimiter:   middleware.NewRateLimiter(middleware.DefaultAutoTaskRate, middleware.DefaultAutoTaskBurst),
	}

	if profile.IsAIEnabled() {
		aiConfig := ai.NewConfigFromProfile(profile)
		if err := aiConfig.Validate(); err != nil {
			return nil, err
		}
		llmService := ai.NewOpenAILLMService(aiConfig.LLM)
		service.CostMonitor = finops.NewCostMonitor()
		llmService.SetUsageRecorder(service.CostMonitor)
		taskAgent := agent.NewTaskAgent(llmService)
		service.AutoTaskService = autotask.NewService(store, taskAgent, localStorage)
	}

	return service, nil
}

// RegisterRoutes registers all REST routes with the echo instance.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	// Media is addressed by unguessable generated names.
	echoServer.GET("/file/:name", s.ServeFile)

	apiGroup := echoServer.Group("/api/v1")

	// AutoTask resolves auth itself so that a failed credential still
	// yields the pipeline's own failure descriptor.
	apiGroup.POST("/autotask", s.HandleAutoTask, s.optionalAuthMiddleware, s.rateLimiter.Middleware())

	authed := apiGroup.Group("", s.authMiddleware)

	authed.GET("/autotask/metrics", s.GetAutoTaskMetrics)
	authed.GET("/autotask/usage", s.GetLLMUsage)
	authed.GET("/stats", s.GetUserStats)

	authed.POST("/feedings", s.CreateFeeding)
	authed.GET("/feedings", s.ListFeedings)
	authed.PATCH("/feedings/:id", s.UpdateFeeding)
	authed.DELETE("/feedings/:id", s.DeleteFeeding)

	authed.POST("/sleeps", s.CreateSleep)
	authed.GET("/sleeps", s.ListSleeps)
	authed.DELETE("/sleeps/:id", s.DeleteSleep)

	authed.POST("/growth", s.CreateGrowthEntry)
	authed.GET("/growth", s.ListGrowthEntries)
	authed.DELETE("/growth/:id", s.DeleteGrowthEntry)

	authed.POST("/vaccinations", s.CreateVaccination)
	authed.GET("/vaccinations", s.ListVaccinations)
	authed.PATCH("/vaccinations/:id", s.UpdateVaccination)
	authed.DELETE("/vaccinations/:id", s.DeleteVaccination)

	authed.POST("/essentials", s.CreateEssential)
	authed.GET("/essentials", s.ListEssentials)
	authed.PATCH("/essentials/:id", s.UpdateEssential)
	authed.DELETE("/essentials/:id", s.DeleteEssential)

	authed.POST("/memories", s.CreateMemory)
	authed.GET("/memories", s.ListMemories)
	authed.DELETE("/memories/:id", s.DeleteMemory)

	authed.POST("/contacts", s.CreateContact)
	authed.GET("/contacts", s.ListContacts)
	authed.DELETE("/contacts/:id", s.DeleteContact)

	authed.POST("/notifications", s.CreateNotification)
	authed.GET("/notifications", s.ListNotifications)
	authed.PATCH("/notifications/:id", s.UpdateNotification)
	authed.DELETE("/notifications/:id", s.DeleteNotification)
}
