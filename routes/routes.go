package routes

import (
	"github.com/gin-gonic/gin"

	"backend/controllers"
	"backend/middleware"
	"backend/repository"
)

func InitializeRoutes(router *gin.Engine) {
	router.POST("/auth/register", controllers.Register)
	router.POST("/auth/login", controllers.Login)

	remitos := controllers.NewRemitoController(repository.NewRemitoStore(), repository.NewCatalog())

	api := router.Group("/")
	api.Use(middleware.AuthMiddleware("user"))
	{
		api.GET("/clientes", controllers.GetClients)
		api.POST("/clientes", controllers.CreateClient)
		api.GET("/clientes/:id", controllers.GetClientByID)
		api.PUT("/clientes/:id", controllers.UpdateClient)
		api.DELETE("/clientes/:id", controllers.DeleteClient)

		api.GET("/products", controllers.GetProducts)
		api.POST("/products", controllers.CreateProduct)
		api.GET("/products/:id", controllers.GetProductByID)
		api.PUT("/products/:id", controllers.UpdateProduct)
		api.DELETE("/products/:id", controllers.DeleteProduct)

		api.POST("/notes", remitos.Create)
		api.GET("/notes", remitos.List)
		api.GET("/notes/costos", remitos.Costos)
		api.GET("/notes/resumen", remitos.Resumen)
		api.GET("/notes/:id", remitos.Get)
		api.DELETE("/notes/:id", remitos.Delete)
	}
}
