package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/billing"
	"backend/models"
)

// RemitoStore is what the remito handlers need from the persistence layer.
type RemitoStore interface {
	Create(ctx context.Context, remito *models.Remito) error
	Get(ctx context.Context, id string) (*models.Remito, error)
	List(ctx context.Context, f billing.Filter) ([]models.Remito, error)
	Delete(ctx context.Context, id string) error
	billing.NoteSource
}

type RemitoController struct {
	store   RemitoStore
	catalog billing.Catalog
}

func NewRemitoController(store RemitoStore, catalog billing.Catalog) *RemitoController {
	return &RemitoController{store: store, catalog: catalog}
}

func (rc *RemitoController) Create(c *gin.Context) {
	var input models.RemitoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]billing.Item, 0, len(input.Productos))
	for _, p := range input.Productos {
		items = append(items, billing.Item{Producto: p.Producto, Cantidad: p.Cantidad})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	remito, err := billing.Build(ctx, rc.catalog, input.Cliente, billing.PriceTier(input.TipoPrecio), items)
	if err != nil {
		if billing.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar remito"})
		return
	}

	if err := rc.store.Create(ctx, remito); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar remito"})
		return
	}
	c.JSON(http.StatusCreated, remito)
}

func (rc *RemitoController) List(c *gin.Context) {
	filter, err := billing.ParseFilter(
		c.Query("clienteId"),
		c.Query("fechaInicio"),
		c.Query("fechaFin"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	remitos, err := rc.store.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener remitos"})
		return
	}
	c.JSON(http.StatusOK, remitos)
}

func (rc *RemitoController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	remito, err := rc.store.Get(ctx, c.Param("id"))
	if err != nil {
		if billing.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remito no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener remito"})
		return
	}
	c.JSON(http.StatusOK, remito)
}

func (rc *RemitoController) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := rc.store.Delete(ctx, c.Param("id")); err != nil {
		if billing.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Remito no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar remito"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Remito eliminado con éxito"})
}

func (rc *RemitoController) Costos(c *gin.Context) {
	filter, err := billing.ParseFilter(
		c.Query("clienteId"),
		c.Query("fechaInicio"),
		c.Query("fechaFin"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	report, err := billing.ComputeCosts(ctx, rc.store, rc.catalog, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener costos"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rc *RemitoController) Resumen(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	remitos, err := rc.store.List(ctx, billing.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener remitos"})
		return
	}
	c.JSON(http.StatusOK, billing.Summarize(remitos, time.Now()))
}
