package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathInvoice  = "/invoice"
	PathClients  = "/clients"
	PathProducts = "/products"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	checkoutHandler *handlers.CheckoutHandler,
	invoiceHandler *handlers.InvoiceHandler,
	clientHandler *handlers.ClientHandler,
	productHandler *handlers.ProductHandler,
) {
	rg.POST(PathCheckout, checkoutHandler.PlaceOrder)

	rg.GET(PathInvoice+"/:id", invoiceHandler.FindInvoice)

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClient)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}
