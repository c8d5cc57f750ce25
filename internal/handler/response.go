package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the API envelope. Status is "success" for 2xx, "fail" for
// client errors and "error" for server failures.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// SuccessMessage writes a 200 response with a message only.
func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Status: "success", Message: message})
}

// Created writes a 201 response with a message and data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Message: message, Data: data})
}

// Fail writes a client-error response with a message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Status: "fail", Message: message})
}

// ServerError writes the generic 500 response.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Status:  "error",
		Message: "Maaf, terjadi kegagalan pada server kami.",
	})
}
