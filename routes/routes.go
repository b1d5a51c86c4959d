package routes

import (
	"github.com/gin-gonic/gin"

	"furnishop/controllers"
	"furnishop/middleware"
	"furnishop/models"
)

// Register wires every API route onto the engine. Admin routes require both
// authentication and the admin role.
func Register(
	r *gin.Engine,
	tokens middleware.TokenValidator,
	users *controllers.UserController,
	products *controllers.ProductController,
	carts *controllers.CartController,
	transactions *controllers.TransactionController,
) {
	auth := middleware.RequireAuth(tokens)
	admin := middleware.RequireRole(models.RoleAdmin)

	api := r.Group("/api")

	userRoutes := api.Group("/users")
	{
		userRoutes.POST("/register", users.Register)
		userRoutes.POST("/login", users.Login)
		userRoutes.GET("/profile", auth, users.Profile)
		userRoutes.GET("", auth, admin, users.List)
		userRoutes.DELETE("/:id", auth, admin, users.Delete)
	}

	productRoutes := api.Group("/products")
	{
		productRoutes.GET("", products.List)
		productRoutes.GET("/:id", products.Get)
		productRoutes.GET("/:id/viewer", products.Viewer)
		productRoutes.POST("", auth, admin, products.Create)
		productRoutes.PUT("/:id", auth, admin, products.Update)
		productRoutes.DELETE("/:id", auth, admin, products.Delete)
	}

	cartRoutes := api.Group("/cart")
	cartRoutes.Use(auth)
	{
		cartRoutes.GET("", carts.GetCart)
		cartRoutes.GET("/summary", carts.Summary)
		cartRoutes.POST("/items", carts.AddItem)
		cartRoutes.PUT("/items/:productId", carts.UpdateItem)
		cartRoutes.DELETE("/items/:productId", carts.RemoveItem)
		cartRoutes.DELETE("", carts.ClearCart)
		cartRoutes.POST("/checkout", carts.Checkout)
	}

	txRoutes := api.Group("/transactions")
	txRoutes.Use(auth)
	{
		txRoutes.POST("", transactions.Create)
		txRoutes.GET("/my-orders", transactions.MyOrders)
		txRoutes.GET("", admin, transactions.List)
		txRoutes.PUT("/:id", admin, transactions.UpdateStatus)
	}
}
