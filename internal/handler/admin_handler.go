package handler

import (
	"net/http"

	"github.com/biochemsafety/site/internal/auth"
	"github.com/biochemsafety/site/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage renders the sign-in prompt.
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"title": "כניסת מנהל",
	})
}

// Login verifies credentials, stores the principal in the session and
// announces the sign-in.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "כניסת מנהל",
			"error": "שם משתמש או סיסמה שגויים",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "כניסת מנהל",
			"error": "שם משתמש או סיסמה שגויים",
		})
		return
	}

	principal := auth.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}
	session := sessions.Default(c)
	auth.Store(session, principal)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "כניסת מנהל",
			"error": "שמירת ההתחברות נכשלה",
		})
		return
	}

	a.notifier.Publish(auth.Change{Event: auth.EventSignedIn, Principal: principal})
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session and announces the sign-out, which in turn drops
// any open edit drafts.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	principal, _ := auth.FromSession(session)
	session.Clear()
	session.Save()

	a.notifier.Publish(auth.Change{Event: auth.EventSignedOut, Principal: principal})
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowAdminPanel renders the management panel for admins. Authenticated
// non-admin principals get the access-denied view instead; no store mutation
// is reachable from there.
func (a *API) ShowAdminPanel(c *gin.Context) {
	blocks, err := a.content.ListAll(c.Request.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("load content blocks for panel")
	}
	services, err := a.catalog.List(c.Request.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("load services for panel")
	}

	session := sessions.Default(c)
	principal, _ := auth.FromSession(session)

	c.HTML(http.StatusOK, "admin_panel.html", gin.H{
		"title":    "ניהול האתר",
		"username": principal.Username,
		"blocks":   blocks,
		"services": services,
	})
}

// PageAuthRequired guards admin pages: unauthenticated visitors are sent to
// the sign-in prompt, authenticated non-admins see the access-denied view.
func (a *API) PageAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.FromSession(sessions.Default(c))
		if !ok {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if !principal.IsAdmin() {
			c.HTML(http.StatusForbidden, "access_denied.html", gin.H{
				"title": "אין הרשאת גישה",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAdminRequired guards the JSON admin API.
func (a *API) APIAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.FromSession(sessions.Default(c))
		if !ok {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		if !principal.IsAdmin() {
			respondError(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
