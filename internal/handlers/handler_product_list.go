package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productListHandler serves one cookie-backed product list (comparison list or wishlist).
type productListHandler struct {
	name        string
	listService portssvc.ProductListSvc
	storage     StorageFactory
}

// RegisterProductListRoutes registers list routes under path, e.g. "/compare" or "/wishlist".
func RegisterProductListRoutes(rg *gin.RouterGroup, path string, listService portssvc.ProductListSvc, storage StorageFactory) {
	h := &productListHandler{
		name:        path[1:],
		listService: listService,
		storage:     storage,
	}

	list := rg.Group(path)
	{
		list.GET("", h.getList)
		list.POST("", h.addItem)
		list.DELETE("", h.clearList)
		list.DELETE("/:productID", h.removeItem)
	}
}

// getList godoc
// @Summary Get a product list
// @Description Returns the comparison list (/compare) or the wishlist (/wishlist)
// @Tags product lists
// @Produce  json
// @Success 200 {object} dto.ProductListResponse
// @Router /compare [get]
// @Router /wishlist [get]
func (h *productListHandler) getList(c *gin.Context) {
	list := h.listService.Load(c.Request.Context(), h.storage(c))
	c.JSON(http.StatusOK, dto.ToProductListResponse(list))
}

// addItem godoc
// @Summary Add a product to a list
// @Description Appends a product. The comparison list holds at most 4 products.
// @Tags product lists
// @Accept  json
// @Produce  json
// @Param   item body dto.AddProductListItemRequest true "Product to add"
// @Success 201 {object} dto.ProductListResponse
// @Failure 400 {object} ErrorResponse "Invalid product"
// @Failure 409 {object} ErrorResponse "Already in the list or list is full"
// @Router /compare [post]
// @Router /wishlist [post]
func (h *productListHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("list", h.name))
	var req dto.AddProductListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	list, err := h.listService.Add(c.Request.Context(), h.storage(c), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to add product")
		return
	}

	logger.Info("Product added to list", slog.String("product_id", req.ProductID), slog.Int("count", list.Len()))
	c.JSON(http.StatusCreated, dto.ToProductListResponse(list))
}

// removeItem godoc
// @Summary Remove a product from a list
// @Description Removes a product. Removing an absent product is not an error.
// @Tags product lists
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.RemoveProductListItemResponse
// @Router /compare/{productID} [delete]
// @Router /wishlist/{productID} [delete]
func (h *productListHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("list", h.name))
	productID := c.Param("productID")

	list, removed, err := h.listService.Remove(c.Request.Context(), h.storage(c), productID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to remove product")
		return
	}

	c.JSON(http.StatusOK, dto.RemoveProductListItemResponse{
		Removed: removed,
		List:    dto.ToProductListResponse(list),
	})
}

// clearList godoc
// @Summary Clear a product list
// @Tags product lists
// @Produce  json
// @Success 200 {object} dto.ProductListResponse
// @Router /compare [delete]
// @Router /wishlist [delete]
func (h *productListHandler) clearList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("list", h.name))

	list, err := h.listService.Clear(c.Request.Context(), h.storage(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to clear list")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductListResponse(list))
}
