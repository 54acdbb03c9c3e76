package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code ranges: 0 success, 1xxx bad request, 2xxx accounts, 3xxx dream
// teams and friends, 4xxx auth/not-found, 5xxx infrastructure.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
