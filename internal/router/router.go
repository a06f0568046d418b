package router

import (
	"html/template"

	"github.com/biochemsafety/site/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Setup configures the Gin engine and the route table.
func Setup(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("biochem_session", store))

	r.SetFuncMap(template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"waLink": handler.WhatsAppLink,
		"add": func(a, b int) int {
			return a + b
		},
	})
	r.LoadHTMLGlob("web/template/*.html")

	r.Static("/static", "./web/static")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public pages.
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/services", api.ShowServices)
	r.GET("/service-detail", api.ShowServiceDetail)
	r.GET("/contact", api.ShowContact)

	// Management panel.
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		pages := admin.Group("")
		pages.Use(api.PageAuthRequired())
		{
			pages.GET("", api.ShowAdminPanel)
		}

		apiGroup := admin.Group("/api")
		apiGroup.Use(api.APIAdminRequired())
		{
			apiGroup.GET("/content-blocks", api.GetContentBlocks)
			apiGroup.POST("/content-blocks", api.CreateContentBlock)
			apiGroup.PUT("/content-blocks/:id", api.UpdateContentBlock)
			apiGroup.DELETE("/content-blocks/:id", api.DeleteContentBlock)

			apiGroup.GET("/services", api.GetServices)
			apiGroup.DELETE("/services/:id", api.DeleteService)

			edit := apiGroup.Group("/edit")
			{
				edit.POST("/services/:id", api.BeginServiceEdit)
				edit.PUT("/services/:id", api.UpdateServiceEdit)
				edit.POST("/services/:id/save", api.SaveServiceEdit)
				edit.DELETE("/services/:id", api.CancelServiceEdit)

				edit.POST("/about/:section", api.BeginAboutEdit)
				edit.GET("/about/:section", api.GetAboutDraft)
				edit.PUT("/about/:section", api.UpdateAboutEdit)
				edit.POST("/about/:section/entries", api.AppendAboutEntry)
				edit.PUT("/about/:section/entries/:idx", api.SetAboutEntry)
				edit.DELETE("/about/:section/entries/:idx", api.RemoveAboutEntry)
				edit.POST("/about/:section/save", api.SaveAboutEdit)
				edit.DELETE("/about/:section", api.CancelAboutEdit)

				edit.POST("/contact", api.BeginContactEdit)
				edit.PUT("/contact", api.UpdateContactEdit)
				edit.POST("/contact/save", api.SaveContactEdit)
				edit.DELETE("/contact", api.CancelContactEdit)
			}

			apiGroup.GET("/link-targets", api.GetLinkTargets)
			apiGroup.POST("/links/resolve", api.ResolveLink)

			apiGroup.POST("/upload", api.UploadFile)
		}
	}

	return r
}
