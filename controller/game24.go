package controller

import (
	"errors"
	"net/http"

	"card24/dto"
	"card24/game24"
	"card24/repository"
	"card24/service"

	"github.com/gin-gonic/gin"
)

type Game24Controller struct {
	svc *service.GameService
}

func NewGame24Controller(svc *service.GameService) *Game24Controller {
	return &Game24Controller{svc: svc}
}

func (ctl *Game24Controller) NewGame(c *gin.Context) {
	var req dto.NewGameRequest
	// 允许空请求体，全部使用默认值
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
			return
		}
	}

	resp, err := ctl.svc.NewGame(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         "发牌成功",
		"data":        resp,
	})
}

func (ctl *Game24Controller) GetGame(c *gin.Context) {
	resp, err := ctl.svc.GetGame(c.Request.Context(), c.Param("gameID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         "获取成功",
		"data":        resp,
	})
}

func (ctl *Game24Controller) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少必要字段"})
		return
	}

	resp, err := ctl.svc.Verify(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	msg := "答案错误"
	if resp.Correct {
		msg = "答案正确"
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         msg,
		"data":        resp,
	})
}

func (ctl *Game24Controller) Solutions(c *gin.Context) {
	var req dto.SolutionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少必要字段"})
		return
	}

	resp, err := ctl.svc.Solutions(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         "求解完成",
		"data":        resp,
	})
}

// writeError 输入错误返回 4xx，其余视为服务端错误
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, game24.ErrInvalidInput), errors.Is(err, game24.ErrInvalidCard):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
