package routes

import (
	"log"
	"os"
	"strconv"

	_ "loja_xpto/docs" // This will be auto-generated
	"loja_xpto/internal/adapter/http/handlers"
	"loja_xpto/internal/adapter/persistence/repository"
	"loja_xpto/internal/infrastructure/database"
	"loja_xpto/internal/infrastructure/payments"
	"loja_xpto/internal/usecase"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository.NewClientDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	placeOrderUseCase := usecase.NewPlaceOrderUseCase(
		clientUseCase,
		productUseCase,
		productUseCase,
		paymentGateway,
		invoiceUseCase,
		orderRepo,
	)

	checkoutHandler := handlers.NewCheckoutHandler(placeOrderUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, checkoutHandler, invoiceHandler, clientHandler, productHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
