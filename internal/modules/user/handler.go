package user

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/middleware"
	"github.com/notepod/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	users.POST("/register", h.register)
	users.POST("/login", h.login)
	users.GET("/:id", middleware.Auth(), h.get)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户名、邮箱和密码是必填项")
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.Conflict(c, "用户名或邮箱已存在")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, u)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户名和密码是必填项")
		return
	}
	u, token, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c, "用户名或密码不正确")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"user": u, "token": token})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "无效的用户ID")
		return
	}
	u, err2 := h.svc.GetByID(uint(id))
	if err2 != nil {
		response.InternalError(c, err2)
		return
	}
	if u == nil {
		response.NotFoundMsg(c, "未找到指定用户")
		return
	}
	response.OK(c, u)
}
