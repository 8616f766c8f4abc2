package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/httpresp"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/product"
	"github.com/fekuna/omnipos-invoice-service/internal/product/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const imageField = "product_image"

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", h.ListProducts)
	g.POST("", h.CreateProduct)
	g.GET("/:id", h.GetProduct)
	g.PUT("/:id", h.UpdateProduct)
	g.DELETE("/:id", h.DeleteProduct)
}

type productRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	RemoveImage bool             `json:"remove_image"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	req, img, closeFn, err := bindProduct(c)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to create product")
		return
	}
	defer closeFn()

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Image: img,
	})
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProducts returns every product ordered by name unless a limit is given; the
// match count is sent in X-Total-Count.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filters := &dto.ProductFilters{
		SearchQuery: c.Query("search"),
		Page:        httpresp.QueryInt(c, "page", 1),
		PageSize:    httpresp.QueryInt(c, "limit", 0),
	}

	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to fetch products")
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	req, img, closeFn, err := bindProduct(c)
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to update product")
		return
	}
	defer closeFn()

	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Image:       img,
		RemoveImage: req.RemoveImage,
	})
	if err != nil {
		httpresp.Error(c, h.logger, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := httpresp.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		httpresp.Error(c, h.logger, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// bindProduct reads either a JSON body or a multipart form carrying an optional
// image. The returned close func releases the uploaded file.
func bindProduct(c *gin.Context) (*productRequest, *dto.ImageUpload, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, nil, noop, apperr.Validation("Invalid request body: " + err.Error())
		}
		return &req, nil, noop, nil
	}

	req := &productRequest{
		Name:        c.PostForm("name"),
		RemoveImage: c.PostForm("remove_image") == "true",
	}
	if raw := strings.TrimSpace(c.PostForm("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, nil, noop, apperr.Validation("Price must be a number")
		}
		req.Price = &price
	}

	fh, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, noop, nil
		}
		return nil, nil, noop, apperr.Validation("Invalid image upload: " + err.Error())
	}
	return openUpload(req, fh)
}

func openUpload(req *productRequest, fh *multipart.FileHeader) (*productRequest, *dto.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, func() {}, err
	}
	img := &dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
	return req, img, func() { f.Close() }, nil
}
