package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoptally/backend/internal/domain"
	"shoptally/backend/internal/export"
	"shoptally/backend/internal/service"
	"shoptally/backend/internal/store"
)

// API is the presentation surface: thin handlers binding JSON to service
// calls. Validation failures come back as 422 with the field→message map so
// form consumers can annotate inputs and resubmit.
type API struct {
	service       *service.Service
	logger        *zap.Logger
	allowedOrigin string
}

func New(svc *service.Service, logger *zap.Logger, allowedOrigin string) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		service:       svc,
		logger:        logger,
		allowedOrigin: allowedOrigin,
	}
}

func (a *API) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), a.requestLogger(), a.cors())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/products", a.handleListProducts)
	v1.POST("/products", a.handleCreateProduct)
	v1.GET("/products/export", a.handleExportProducts)

	v1.GET("/sales", a.handleListSales)
	v1.POST("/sales", a.handleRecordSale)
	v1.POST("/sales/quote", a.handleQuoteSale)
	v1.GET("/sales/export", a.handleExportSales)

	v1.GET("/purchases", a.handleListPurchases)
	v1.POST("/purchases", a.handleRecordPurchase)
	v1.GET("/purchases/export", a.handleExportPurchases)
	v1.GET("/suppliers/suggestions", a.handleSupplierSuggestions)

	v1.GET("/notifications", a.handleListNotifications)
	v1.POST("/notifications/:id/read", a.handleMarkNotificationRead)
	v1.POST("/notifications/read-all", a.handleMarkAllNotificationsRead)

	v1.GET("/ui/flags", a.handleGetUIFlags)
	v1.PUT("/ui/flags", a.handleSetUIFlags)

	v1.GET("/dashboard", a.handleDashboard)
	v1.GET("/reports/daily-sales", a.handleDailySalesReport)
	v1.GET("/reports/sales", a.handleSalesReport)
	v1.GET("/reports/products", a.handleProductsReport)
	v1.GET("/reports/payments", a.handlePaymentsReport)
	v1.GET("/reports/payments/export", a.handleExportPaymentsReport)
	v1.GET("/reports/suppliers", a.handleSuppliersReport)

	return router
}

func (a *API) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		a.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (a *API) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", a.allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// writeError maps the error taxonomy to status codes: field-level
// validation → 422 with the field map, missing entity → 404, anything
// else → 500.
func (a *API) writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	a.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func (a *API) writeCSV(c *gin.Context, filename, content string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(content))
}

func (a *API) handleListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": a.service.ListProducts()})
}

func (a *API) handleCreateProduct(c *gin.Context) {
	var req domain.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	product, err := a.service.CreateProduct(req)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (a *API) handleExportProducts(c *gin.Context) {
	a.writeCSV(c, "products.csv", export.ProductsCSV(a.service.ListProducts()))
}

func (a *API) handleListSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sales": a.service.ListSales()})
}

func (a *API) handleRecordSale(c *gin.Context) {
	var req domain.SaleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := a.service.RecordSale(req)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (a *API) handleQuoteSale(c *gin.Context) {
	var req domain.SaleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	quote, err := a.service.QuoteSale(req)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (a *API) handleExportSales(c *gin.Context) {
	a.writeCSV(c, "sales.csv", export.SalesCSV(a.service.ListSales()))
}

func (a *API) handleListPurchases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"purchases": a.service.ListPurchases()})
}

func (a *API) handleRecordPurchase(c *gin.Context) {
	var req domain.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	purchase, err := a.service.RecordPurchase(req)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

func (a *API) handleExportPurchases(c *gin.Context) {
	a.writeCSV(c, "purchases.csv", export.PurchasesCSV(a.service.ListPurchases()))
}

func (a *API) handleSupplierSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suppliers": a.service.SupplierSuggestions()})
}

func (a *API) handleListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": a.service.ListNotifications()})
}

func (a *API) handleMarkNotificationRead(c *gin.Context) {
	if err := a.service.MarkNotificationRead(c.Param("id")); err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func (a *API) handleMarkAllNotificationsRead(c *gin.Context) {
	a.service.MarkAllNotificationsRead()
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func (a *API) handleGetUIFlags(c *gin.Context) {
	c.JSON(http.StatusOK, a.service.UIFlags())
}

func (a *API) handleSetUIFlags(c *gin.Context) {
	var flags domain.UIFlags
	if err := c.ShouldBindJSON(&flags); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	a.service.SetUIFlags(flags)
	c.JSON(http.StatusOK, flags)
}

func (a *API) handleDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, a.service.Dashboard(c.Request.Context()))
}

func (a *API) handleDailySalesReport(c *gin.Context) {
	summary, err := a.service.DailySalesReport(c.Query("date"))
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (a *API) handleSalesReport(c *gin.Context) {
	c.JSON(http.StatusOK, a.service.SalesReport())
}

func (a *API) handleProductsReport(c *gin.Context) {
	c.JSON(http.StatusOK, a.service.ProductsReport())
}

func (a *API) handlePaymentsReport(c *gin.Context) {
	c.JSON(http.StatusOK, a.service.PaymentsReport(c.Query("range")))
}

func (a *API) handleExportPaymentsReport(c *gin.Context) {
	rep := a.service.PaymentsReport(c.Query("range"))
	a.writeCSV(c, "payments-report-"+rep.Range+".csv", export.PaymentsReportCSV(rep))
}

func (a *API) handleSuppliersReport(c *gin.Context) {
	c.JSON(http.StatusOK, a.service.SuppliersReport())
}
