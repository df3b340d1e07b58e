package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/config"
	"github.com/Sandrogaltran08/cief/internal/api/handler"
	"github.com/Sandrogaltran08/cief/internal/api/middleware"
)

// templatesGlob caminho dos templates HTML relativo ao diretório de execução
const templatesGlob = "web/templates/*.html"

// Setup inicializa e devolve o roteador Gin
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.LoadHTMLGlob(templatesGlob)

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── Páginas HTML ──
	r.GET("/", h.Pages.Index)
	r.GET("/search", h.Pages.SearchPage)

	r.GET("/teachers", h.Pages.Teachers)
	r.GET("/teachers/new", h.Pages.TeacherForm)
	r.POST("/teachers/new", h.Pages.TeacherCreate)

	r.GET("/rentals", h.Pages.Rentals)
	r.GET("/rentals/new", h.Pages.RentalForm)
	r.POST("/rentals/new", h.Pages.RentalCreate)
	r.GET("/rentals/return/:id", h.Pages.RentalReturn)
	r.POST("/rentals/delete/:id", h.Pages.RentalDelete)
	r.GET("/rentals/export/pdf", h.Export.RentalsPDF)

	r.GET("/inventory", h.Pages.Inventory)
	r.GET("/inventory/new", h.Pages.InventoryForm)
	r.POST("/inventory/new", h.Pages.InventoryCreate)
	r.GET("/inventory/edit/:id", h.Pages.InventoryEditForm)
	r.POST("/inventory/edit/:id", h.Pages.InventoryUpdate)
	r.GET("/inventory/delete/:id", h.Pages.InventoryDelete)
	r.GET("/inventory/export/pdf", h.Export.InventoryPDF)
	r.GET("/inventory/export/xlsx", h.Export.InventoryXLSX)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		rentals := v1.Group("/rentals")
		{
			rentals.GET("", h.Rental.ListRentals)
			rentals.POST("", h.Rental.CreateRental)
			rentals.POST("/:id/return", h.Rental.ReturnRental)
			rentals.DELETE("/:id", h.Rental.DeleteRental)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", h.Inventory.ListItems)
			inventory.GET("/:id", h.Inventory.GetItem)
			inventory.POST("", h.Inventory.CreateItem)
			inventory.PUT("/:id", h.Inventory.UpdateItem)
			inventory.DELETE("/:id", h.Inventory.DeleteItem)
		}

		teachers := v1.Group("/teachers")
		{
			teachers.GET("", h.Teacher.ListTeachers)
			teachers.POST("", h.Teacher.CreateTeacher)
		}

		v1.GET("/search", h.Search.Search)
	}

	return r
}
