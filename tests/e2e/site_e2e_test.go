package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/biochemsafety/site/internal/auth"
	"github.com/biochemsafety/site/internal/content"
	"github.com/biochemsafety/site/internal/db"
	"github.com/biochemsafety/site/internal/handler"
	"github.com/biochemsafety/site/internal/router"
	"github.com/biochemsafety/site/internal/service"
	"github.com/biochemsafety/site/internal/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler http.Handler
	public  *localClient
	admin   *localClient
	baseURL string
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(h http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: h, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req

	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

// chdirRepoRoot moves the working directory to the module root so the router
// finds the templates under web/template.
func chdirRepoRoot(t *testing.T) {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate test file")
	}
	root := filepath.Join(filepath.Dir(file), "..", "..")
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir to repo root failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func setupSuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)
	chdirRepoRoot(t)

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}, &db.ContentBlock{}, &db.Service{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	hashed, err := bcrypt.GenerateFromPassword([]byte("e2e-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: "admin", Password: string(hashed), Role: db.RoleAdmin}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	ctx := context.Background()
	catalog := service.NewServiceCatalog(gdb)
	if _, err := catalog.Create(ctx, service.ServiceInput{
		Slug:             "chemical-safety",
		Title:            "בטיחות כימית",
		ShortDescription: "<p>הערכת סיכונים כימיים</p>",
		FullDescription:  "<p>ליווי מלא בנושאי כימיה תעסוקתית</p>",
		Benefits:         "מענה מהיר\nניסיון רב שנים",
		Order:            1,
	}); err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	contentSvc := service.NewContentService(gdb)
	if _, err := contentSvc.SaveField(ctx, "home", "hero", "שם מלא", "ישראל ישראלי"); err != nil {
		t.Fatalf("failed to seed hero field: %v", err)
	}

	defaults, err := content.LoadDefaults()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	api := handler.NewAPI(gdb, defaults, handler.Options{
		Store:       storage.NewLocalStore(t.TempDir(), "/static/uploads"),
		Notifier:    auth.NewNotifier(),
		SiteBaseURL: "https://www.biochemsafety.co.il",
	})
	t.Cleanup(api.Close)

	engine := router.Setup(api, "test-session-secret")
	return &e2eSuite{
		handler: engine,
		public:  newLocalClient(engine, false),
		admin:   newLocalClient(engine, true),
		baseURL: "http://example.test",
	}
}

func (s *e2eSuite) get(t *testing.T, client *localClient, path string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var body strings.Builder
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		body.Write(buf[:n])
		if readErr != nil {
			break
		}
	}
	return resp.StatusCode, body.String()
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"e2e-secret"}}
	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/admin/login", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("build login request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.admin.Do(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
}

func TestSiteEndToEnd(t *testing.T) {
	suite := setupSuite(t)

	t.Run("public pages", func(t *testing.T) {
		code, body := suite.get(t, suite.public, "/")
		if code != http.StatusOK {
			t.Fatalf("home returned %d", code)
		}
		if !strings.Contains(body, "ישראל ישראלי") {
			t.Fatal("home missing seeded hero field")
		}
		if !strings.Contains(body, "בטיחות כימית") {
			t.Fatal("home missing seeded service")
		}
		if !strings.Contains(body, `dir="rtl"`) {
			t.Fatal("home not rendered RTL")
		}

		code, body = suite.get(t, suite.public, "/about")
		if code != http.StatusOK {
			t.Fatalf("about returned %d", code)
		}
		if !strings.Contains(body, "<ul>") {
			t.Fatal("about missing default list sections")
		}

		code, body = suite.get(t, suite.public, "/service-detail?id=chemical-safety")
		if code != http.StatusOK {
			t.Fatalf("service detail returned %d", code)
		}
		if !strings.Contains(body, "מענה מהיר") {
			t.Fatal("service detail missing benefits")
		}

		code, _ = suite.get(t, suite.public, "/service-detail?id=missing")
		if code != http.StatusNotFound {
			t.Fatalf("unknown service returned %d", code)
		}

		code, body = suite.get(t, suite.public, "/contact")
		if code != http.StatusOK || !strings.Contains(body, "wa.me/972") {
			t.Fatalf("contact page broken: %d", code)
		}
	})

	t.Run("admin requires authentication", func(t *testing.T) {
		code, _ := suite.get(t, suite.public, "/admin")
		if code != http.StatusFound {
			t.Fatalf("anonymous /admin should redirect, got %d", code)
		}

		req, _ := http.NewRequest(http.MethodGet, suite.baseURL+"/admin/api/services", nil)
		resp, err := suite.public.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("anonymous API call returned %d", resp.StatusCode)
		}
	})

	t.Run("admin panel and API after login", func(t *testing.T) {
		suite.login(t)

		code, body := suite.get(t, suite.admin, "/admin")
		if code != http.StatusOK {
			t.Fatalf("admin panel returned %d", code)
		}
		if !strings.Contains(body, "chemical-safety") {
			t.Fatal("panel missing seeded service")
		}

		code, body = suite.get(t, suite.admin, "/admin/api/link-targets")
		if code != http.StatusOK {
			t.Fatalf("link targets returned %d", code)
		}
		if !strings.Contains(body, "service:chemical-safety") {
			t.Fatal("link targets missing service entry")
		}
	})

	t.Run("contact edit session round trip", func(t *testing.T) {
		post := func(path, payload string) (int, string) {
			req, _ := http.NewRequest(http.MethodPost, suite.baseURL+path, strings.NewReader(payload))
			if payload != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp, err := suite.admin.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			var body strings.Builder
			buf := make([]byte, 4096)
			for {
				n, readErr := resp.Body.Read(buf)
				body.Write(buf[:n])
				if readErr != nil {
					break
				}
			}
			return resp.StatusCode, body.String()
		}

		code, _ := post("/admin/api/edit/contact", "")
		if code != http.StatusOK {
			t.Fatalf("begin returned %d", code)
		}

		req, _ := http.NewRequest(http.MethodPut, suite.baseURL+"/admin/api/edit/contact",
			strings.NewReader(`{"phone":"050-123-4567","email":"e2e@example.co.il","whatsapp":"050-123-4567","linkedin":""}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := suite.admin.Do(req)
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("update returned %d", resp.StatusCode)
		}

		code, _ = post("/admin/api/edit/contact/save", "")
		if code != http.StatusOK {
			t.Fatalf("save returned %d", code)
		}

		// The public site reflects the new phone number.
		code, body := suite.get(t, suite.public, "/contact")
		if code != http.StatusOK || !strings.Contains(body, "050-123-4567") {
			t.Fatalf("saved phone not visible on contact page: %d", code)
		}
	})
}
