// Package api exposes the portal over HTTP: the interactive page and a
// small JSON API mirroring its data.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mednews/internal/config"
	"mednews/internal/models"
	"mednews/internal/portal"
	"mednews/internal/security"
	"mednews/internal/web"
)

// languageCookie remembers the visitor's language selection between
// requests; until it is set the page shows only the language chooser.
const languageCookie = "mednews_lang"

var searchLabels = map[models.Language]string{
	models.LanguageEnglish:   "Search news (title/description)",
	models.LanguageMalayalam: "വാർത്തകളിൽ തിരയുക (ശീർഷകം/വിവരണം)",
}

const storeWarningMessage = "News is temporarily unavailable. Please try again in a few minutes."

type Server struct {
	router        *gin.Engine
	portal        *portal.Portal
	port          int
	pageServer    *web.PageServer
	swaggerServer *web.SwaggerServer
}

func NewServer(p *portal.Portal, cfg *config.Config) *Server {
	router := gin.Default()

	// Load HTML templates from filesystem (only if the page is enabled)
	if cfg.EnablePage {
		router.LoadHTMLGlob("internal/web/templates/*")
	}

	security.Setup(router, cfg.Security)

	server := &Server{
		router:        router,
		portal:        p,
		port:          cfg.Port,
		pageServer:    web.NewPageServer(cfg.EnablePage),
		swaggerServer: web.NewSwaggerServer(cfg.EnableSwagger),
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api/v1")
	{
		api.GET("/articles", s.getArticles)
		api.GET("/tags", s.getTags)
	}

	s.pageServer.RegisterRoutes(s.router, s.portalPage)
	s.swaggerServer.RegisterRoutes(s.router)
}

func (s *Server) Start() error {
	return s.router.Run(":" + strconv.Itoa(s.port))
}

// StartWithContext runs the server until the context is canceled, then
// shuts it down gracefully.
func (s *Server) StartWithContext(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(s.port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "medical-news-portal",
	})
}

// resolveLanguage works the session language state machine: a lang query
// parameter is a selection event and is persisted in a cookie; otherwise
// the cookie carries the earlier selection; with neither, the state stays
// unselected.
func (s *Server) resolveLanguage(c *gin.Context) models.LanguageSelection {
	var selection models.LanguageSelection

	if lang, ok := models.ParseLanguage(c.Query("lang")); ok {
		selection.Select(lang)
		c.SetCookie(languageCookie, string(lang), int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
		return selection
	}

	if value, err := c.Cookie(languageCookie); err == nil {
		if lang, ok := models.ParseLanguage(value); ok {
			selection.Select(lang)
		}
	}

	return selection
}

// criteriaFromRequest builds the filter criteria for one interaction.
func criteriaFromRequest(c *gin.Context, lang models.Language) models.FilterCriteria {
	tag := c.Query("tag")
	if tag == "" {
		tag = models.TagAll
	}

	return models.FilterCriteria{
		Language: lang,
		Query:    strings.TrimSpace(c.Query("q")),
		Tag:      tag,
	}
}

// portalPage renders the interactive page: one full synchronous run of
// fetch(from cache) → filter → render per request.
func (s *Server) portalPage(c *gin.Context) {
	selection := s.resolveLanguage(c)
	if !selection.Selected() {
		c.HTML(http.StatusOK, "portal.html", gin.H{
			"selected": false,
			"page":     models.PortalPage{},
		})
		return
	}

	lang := selection.Language()
	criteria := criteriaFromRequest(c, lang)

	articles, articlesErr := s.portal.Articles(c.Request.Context())
	tags, tagsErr := s.portal.TagOptions(c.Request.Context())

	filtered := portal.FilterArticles(articles, criteria)
	cards := portal.BuildCards(filtered, lang)

	page := models.PortalPage{
		Language: lang,
		Query:    criteria.Query,
		Tag:      criteria.Tag,
		Tags:     tags,
		Rows:     portal.GroupCards(cards),
		Count:    len(cards),
	}
	if articlesErr != nil || tagsErr != nil {
		page.StoreWarning = storeWarningMessage
	}

	c.HTML(http.StatusOK, "portal.html", gin.H{
		"selected":    true,
		"page":        page,
		"searchLabel": searchLabels[lang],
	})
}

// getArticles godoc
// @Summary Filtered news articles
// @Description Returns the rendered article cards matching the language, free-text query and tag.
// @Produce json
// @Param lang query string false "Display language (english or malayalam)" default(english)
// @Param q query string false "Free-text search over the active language's title and description"
// @Param tag query string false "Exact tag to filter by; All bypasses the filter" default(All)
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /articles [get]
func (s *Server) getArticles(c *gin.Context) {
	lang, ok := models.ParseLanguage(c.Query("lang"))
	if !ok {
		lang = models.LanguageEnglish
	}
	criteria := criteriaFromRequest(c, lang)

	articles, err := s.portal.Articles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":    "news store unavailable",
			"language": lang,
			"cards":    []models.Card{},
			"count":    0,
		})
		return
	}

	cards := portal.BuildCards(portal.FilterArticles(articles, criteria), lang)

	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"query":    criteria.Query,
		"tag":      criteria.Tag,
		"cards":    cards,
		"count":    len(cards),
	})
}

// getTags godoc
// @Summary Tag dropdown values
// @Description Returns the All sentinel followed by the distinct tags observed in the store.
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /tags [get]
func (s *Server) getTags(c *gin.Context) {
	tags, err := s.portal.TagOptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "news store unavailable",
			"tags":  tags,
			"count": len(tags),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":  tags,
		"count": len(tags),
	})
}
