package router

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	communityCtrl "plantscan/pkg/community/controller"
	guideCtrl "plantscan/pkg/guide/controller"
	healthCtrl "plantscan/pkg/health/controller"
	identifyCtrl "plantscan/pkg/identify/controller"
	"plantscan/pkg/middleware"
	themeCtrl "plantscan/pkg/theme/controller"
)

type Controllers struct {
	Identify  identifyCtrl.IdentifyController
	Guide     guideCtrl.GuideController
	Community communityCtrl.CommunityController
	Theme     themeCtrl.ThemeController
	Health    healthCtrl.HealthController
}

// New registers the API routes. staticDir is served at / when it exists.
func New(e *echo.Echo, ctl Controllers, defaultMemberID, staticDir string) *echo.Echo {
	e.GET("/health", ctl.Health.Health)

	api := e.Group("/api")
	api.POST("/identify", ctl.Identify.Identify)

	guide := api.Group("/guide")
	guide.GET("/plants", ctl.Guide.List)
	guide.GET("/plants/:id", ctl.Guide.Get)
	guide.GET("/facets", ctl.Guide.Facets)
	guide.GET("/export.xlsx", ctl.Guide.Export)

	community := api.Group("/community", middleware.MemberSession(defaultMemberID))
	community.GET("/posts", ctl.Community.ListPosts)
	community.POST("/posts", ctl.Community.CreatePost)
	community.POST("/posts/:id/upvote", ctl.Community.Upvote)
	community.POST("/posts/:id/downvote", ctl.Community.Downvote)
	community.GET("/tags", ctl.Community.Tags)
	community.GET("/contributors", ctl.Community.Contributors)
	community.GET("/guidelines", ctl.Community.Guidelines)
	community.GET("/me", ctl.Community.Me)

	api.GET("/theme", ctl.Theme.Get)
	api.PUT("/theme", ctl.Theme.Set)
	api.POST("/theme/toggle", ctl.Theme.Toggle)

	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			e.Static("/static", staticDir)
			if _, err := os.Stat(filepath.Join(staticDir, "index.html")); err == nil {
				e.File("/", filepath.Join(staticDir, "index.html"))
			}
		}
	}
	return e
}
