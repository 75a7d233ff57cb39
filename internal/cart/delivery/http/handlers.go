package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/cart"
	"mall-backend/internal/middleware"
	"mall-backend/pkg/response"
)

// Get godoc
// @Summary     Current cart
// @Description Returns the authenticated user's cart lines with product details.
// @Tags        Cart
// @Produce     json
// @Success     200 {array} cartItemResp
// @Security    BearerAuth
// @Router      /api/cart [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	items, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newCartListResp(items))
}

// Add godoc
// @Summary     Add to cart
// @Description Adds one unit of a product, incrementing quantity when already present.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Product to add"
// @Success     201 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/cart [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		response.BadRequest(c, "缺少商品ID")
		return
	}

	items, err := h.uc.Add(ctx, sc, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrMissingParams):
			response.BadRequest(c, "缺少商品ID")
		case errors.Is(err, cart.ErrProductNotFound):
			response.NotFound(c, "商品不存在")
		default:
			h.l.Errorf(ctx, "uc.Add: %v", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, mutationResp{
		Status:  response.StatusSuccess,
		Message: "已添加到购物车",
		Cart:    newCartLinesResp(items),
	})
}

// Update godoc
// @Summary     Update cart quantity
// @Description Sets a line's quantity; a quantity of zero or less removes the line.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Item and new quantity"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/cart [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == nil || req.Quantity == nil {
		response.BadRequest(c, "缺少参数")
		return
	}

	items, err := h.uc.UpdateQuantity(ctx, sc, *req.ItemID, *req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			response.NotFound(c, "购物车项不存在")
			return
		}
		h.l.Errorf(ctx, "uc.UpdateQuantity: %v", err)
		response.InternalError(c)
		return
	}

	message := "购物车已更新"
	if *req.Quantity <= 0 {
		message = "已从购物车移除"
	}

	response.OK(c, mutationResp{
		Status:  response.StatusSuccess,
		Message: message,
		Cart:    newCartLinesResp(items),
	})
}

// Remove godoc
// @Summary     Remove from cart
// @Description Deletes a cart line the user owns and returns the remaining cart.
// @Tags        Cart
// @Produce     json
// @Param       item_id path int true "Cart item ID"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/cart/{item_id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		response.NotFound(c, "购物车项不存在")
		return
	}

	items, err := h.uc.Remove(ctx, sc, itemID)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			response.NotFound(c, "购物车项不存在")
			return
		}
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, mutationResp{
		Status:  response.StatusSuccess,
		Message: "已从购物车移除",
		Cart:    newCartLinesResp(items),
	})
}
