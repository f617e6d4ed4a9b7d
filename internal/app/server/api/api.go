// POST   /user/register       # Регистрация (публичный)
// POST   /user/login          # Вход, делает пользователя текущим (публичный)
// GET    /user/current        # Текущий пользователь (публичный)
// GET    /api/products        # Список продуктов (текущий пользователь)
// POST   /api/products        # Добавить продукт
// GET    /api/products/{id}   # Получить продукт
// PUT    /api/products/{id}   # Обновить продукт
// DELETE /api/products/{id}   # Удалить продукт
// GET    /api/v1/health       # Проверка хранилища

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"estoque/internal/app"
	healthAPI "estoque/internal/app/server/api/http/health"
	"estoque/internal/app/server/api/http/middleware"
	"estoque/internal/app/server/api/http/middleware/auth"
	"estoque/internal/app/server/api/http/middleware/logger"
	productAPI "estoque/internal/app/server/api/http/product"
	userAPI "estoque/internal/app/server/api/http/user"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Product *productAPI.Handler
}

// New создает *chi.Mux со всеми операциями поверх сервисов приложения
func New(a *app.App) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Estoque API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(a)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Product.SetupRoutes(API)

	return mux
}

func handlers(a *app.App) *Handlers {
	authMW := auth.New(a.Sessions, a.Localizer, a.Log)
	loggerMW := logger.New(a.Log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(a.Store, a.Config.Storage.Driver, a.Log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(a.Users, a.Localizer, a.Log, middlewares.GetAllAndClear())

	// logger снаружи, чтобы отказы auth тоже попадали в лог
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	productHandler := productAPI.NewHandler(a.Products, a.Localizer, a.Log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Product: productHandler,
	}
}
