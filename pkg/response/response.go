package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given body as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with the given body as-is.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// ErrorMsg sends an error envelope with the given status code.
func ErrorMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, Resp{
		Status: StatusError,
		Error:  msg,
	})
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, msg string) {
	ErrorMsg(c, http.StatusBadRequest, msg)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context, msg string) {
	ErrorMsg(c, http.StatusUnauthorized, msg)
}

// Forbidden sends a 403 error envelope.
func Forbidden(c *gin.Context, msg string) {
	ErrorMsg(c, http.StatusForbidden, msg)
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, msg string) {
	ErrorMsg(c, http.StatusNotFound, msg)
}

// InternalError sends 500 with a generic message, never the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Status: StatusError,
		Error:  DefaultErrorMessage,
	})
}
