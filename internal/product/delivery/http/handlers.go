package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/product"
	"mall-backend/pkg/response"
)

// List godoc
// @Summary     Storefront product selection
// @Description Returns the full catalog when small, otherwise a rotating random subset of five products.
// @Tags        Products
// @Produce     json
// @Success     200 {array} productResp
// @Router      /api/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newProductListResp(products))
}

// Create godoc
// @Summary     Create a product
// @Description Creates a new catalog item; the ID must be unique.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Product data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/products [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少必要参数")
		return
	}

	p, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, product.ErrMissingParams):
			response.BadRequest(c, "缺少必要参数")
		case errors.Is(err, product.ErrProductExists):
			response.BadRequest(c, "商品ID已存在")
		default:
			h.l.Errorf(ctx, "uc.Create: %v", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, createResp{Message: "商品创建成功", ProductID: p.ID})
}

// Update godoc
// @Summary     Update a product
// @Description Applies a partial update to an existing catalog item.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Product ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/products/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "无效的请求参数")
		return
	}
	req.ID = c.Param("id")

	if _, err := h.uc.Update(ctx, req.toInput()); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, response.Resp{Status: response.StatusSuccess, Message: "商品更新成功"})
}

// Delete godoc
// @Summary     Delete a product
// @Description Removes a catalog item and any cart lines referencing it.
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/products/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, response.Resp{Status: response.StatusSuccess, Message: "商品已删除"})
}

// Search godoc
// @Summary     Search products
// @Description Returns items whose name or description contains the keyword.
// @Tags        Products
// @Produce     json
// @Param       q query string true "Search keyword"
// @Success     200 {array} productResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/products/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	keyword := c.Query("q")
	if keyword == "" {
		response.BadRequest(c, "缺少搜索关键词")
		return
	}

	products, err := h.uc.Search(ctx, keyword)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newProductListResp(products))
}

// Detail godoc
// @Summary     Product detail
// @Description Returns a single catalog item including its image list.
// @Tags        Products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/products/{id}/detail [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newDetailResp(out))
}
