package router

import (
	"log/slog"

	"portfolio-api/internal/cache"
	"portfolio-api/internal/database"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/handler/auth"
	"portfolio-api/internal/handler/components"
	"portfolio-api/internal/handler/contact"
	"portfolio-api/internal/handler/experience"
	"portfolio-api/internal/handler/files"
	"portfolio-api/internal/handler/users"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Options 為路由需要的設定值
type Options struct {
	DownloadDir      string
	PasswordMode     service.PasswordMode
	CORSAllowOrigins []string
	Logger           *slog.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, opts Options) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.CORSAllowOrigins) == 0 {
		opts.CORSAllowOrigins = []string{"*"}
	}

	// /components/ 與 /components 視為同一路徑
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.Recover())
	e.Use(middleware.CORS(opts.CORSAllowOrigins))

	// 健康檢查
	e.GET("/ping", handler.PingHandler(db, cch))

	// 作品集項目
	e.POST("/components", components.CreateComponentHandler(db))
	e.GET("/components", components.ListComponentsHandler(db))
	e.GET("/components/:id", components.GetComponentHandler(db))
	e.PUT("/components", components.UpdateComponentHandler(db))
	e.DELETE("/components/:id", components.DeleteComponentHandler(db))

	// 使用者
	e.POST("/users", users.CreateUserHandler(db, opts.PasswordMode))
	e.GET("/users", users.ListUsersHandler(db))
	e.GET("/users/:id", users.GetUserHandler(db))
	e.DELETE("/users/:id", users.DeleteUserHandler(db))
	e.POST("/Auth_user", auth.AuthenticateHandler(db, opts.PasswordMode))

	// 聯絡訊息
	e.POST("/contact", contact.CreateContactHandler(db))
	e.GET("/contact", contact.MarkAllVisitedHandler(db))
	e.GET("/contact-count", contact.CountUnvisitedHandler(db))

	// 經歷
	e.POST("/experience", experience.CreateExperienceHandler(db))
	e.GET("/get-exp", experience.ListExperiencesHandler(db))

	e.GET("/downloadfile/:filename", files.DownloadHandler(opts.DownloadDir))

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
