package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
	view    *services.CatalogView
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalog: catalog,
		view:    services.NewCatalogView(),
	}
}

func catalogCacheKey(opts models.CatalogOptions) string {
	return fmt.Sprintf("catalog_c%s_q%s_s%s", opts.Category, opts.Search, opts.Sort)
}

func invalidateCatalogCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "catalog_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Browse the catalog
// @Description Get the filtered, sorted product list with campaign discounts applied. Changing the category resets search and sort.
// @Tags Catalog
// @Produce json
// @Param category query string false "Exact category filter"
// @Param search query string false "Case-insensitive search over title and description"
// @Param sort query string false "Sort option" Enums(price_asc, price_desc)
// @Success 200 {object} models.Response
// @Router /catalog [get]
func (ctrl *CatalogController) Browse(c *gin.Context) {
	if category, ok := c.GetQuery("category"); ok {
		ctrl.view.SetCategory(category)
	}
	if term, ok := c.GetQuery("search"); ok {
		ctrl.view.SetSearch(term)
	}
	if sortOpt, ok := c.GetQuery("sort"); ok {
		ctrl.view.SetSort(models.SortOption(sortOpt))
	}
	opts := ctrl.view.Options()

	cacheKey := catalogCacheKey(opts)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	views, err := ctrl.catalog.Browse(ctx, opts)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load catalog", "error": err.Error()})
		return
	}

	response := gin.H{"success": true, "message": "Catalog retrieved", "data": views, "options": opts}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary List categories
// @Description Get the distinct product categories in first-seen order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /catalog/categories [get]
func (ctrl *CatalogController) Categories(c *gin.Context) {
	categories, err := ctrl.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load categories", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get product detail
// @Description Get one product with its campaign discount, effective price and reviews
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) ProductDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	view, err := ctrl.catalog.ProductDetail(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load product", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": view})
}
