package routes

import (
	"net/http"

	"mavrix/admin"
	"mavrix/auth"
	"mavrix/cart"
	"mavrix/middleware"
	"mavrix/orders"
	"mavrix/products"
	"mavrix/push"
	"mavrix/ratelim"
	"mavrix/settings"
	"mavrix/uploads"
	"mavrix/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddProductRoutes(router *httprouter.Router) {
	// brands/categories get their own top-level paths: httprouter cannot
	// mix a static segment with :productid at the same level.
	router.GET("/api/products", ratelim.RateLimit(products.GetProducts))
	router.GET("/api/brands", ratelim.RateLimit(products.GetBrands))
	router.GET("/api/categories", ratelim.RateLimit(products.GetCategories))
	router.GET("/api/products/:productid", ratelim.RateLimit(products.GetProduct))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.GET("/api/cart/totals", middleware.Authenticate(cart.GetCartTotals))
	router.POST("/api/cart/items", ratelim.RateLimit(middleware.Authenticate(cart.AddToCart)))
	router.POST("/api/cart/merge", ratelim.RateLimit(middleware.Authenticate(cart.MergeGuestCart)))
	router.PUT("/api/cart/items/:productid", middleware.Authenticate(cart.UpdateCartItem))
	router.DELETE("/api/cart/items/:productid", middleware.Authenticate(cart.RemoveCartItem))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist", middleware.Authenticate(wishlist.GetWishlist))
	router.POST("/api/wishlist/items", ratelim.RateLimit(middleware.Authenticate(wishlist.AddToWishlist)))
	router.POST("/api/wishlist/toggle", ratelim.RateLimit(middleware.Authenticate(wishlist.ToggleWishlist)))
	router.DELETE("/api/wishlist/items/:productid", middleware.Authenticate(wishlist.RemoveFromWishlist))
	router.DELETE("/api/wishlist", middleware.Authenticate(wishlist.ClearWishlist))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/api/orders", ratelim.RateLimit(middleware.Authenticate(orders.CreateOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetMyOrders))
	router.GET("/api/orders/:ordernumber", middleware.Authenticate(orders.GetOrder))
	router.GET("/api/orders/:ordernumber/invoice", middleware.Authenticate(orders.DownloadInvoice))
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings", middleware.Authenticate(settings.GetSettings))
	router.PUT("/api/settings/currency", middleware.Authenticate(settings.UpdateCurrency))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/orders", middleware.Authenticate(middleware.RequireAdmin(admin.GetAllOrders)))
	router.PUT("/api/admin/orders/:ordernumber/status", middleware.Authenticate(middleware.RequireAdmin(admin.UpdateOrderStatus)))
	router.POST("/api/admin/orders/:ordernumber/notes", middleware.Authenticate(middleware.RequireAdmin(admin.AddOrderNote)))
	router.GET("/api/admin/users", middleware.Authenticate(middleware.RequireAdmin(admin.ListUsers)))
	router.PUT("/api/admin/users/:userid/role", middleware.Authenticate(middleware.RequireAdmin(admin.UpdateUserRole)))
	router.GET("/api/admin/stats", middleware.Authenticate(middleware.RequireAdmin(admin.GetStats)))

	router.POST("/api/admin/products", middleware.Authenticate(middleware.RequireAdmin(products.CreateProduct)))
	router.PUT("/api/admin/products/:productid", middleware.Authenticate(middleware.RequireAdmin(products.EditProduct)))
	router.DELETE("/api/admin/products/:productid", middleware.Authenticate(middleware.RequireAdmin(products.DeleteProduct)))
	router.POST("/api/admin/products/:productid/image", middleware.Authenticate(middleware.RequireAdmin(uploads.UploadProductImage)))
}

func AddWebsocketRoutes(router *httprouter.Router, hub *push.Hub) {
	router.GET("/ws", push.ServeWS(hub))
}
