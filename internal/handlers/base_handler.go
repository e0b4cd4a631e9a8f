package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/middleware"
	"homeserve_backend/pkg/apperrors"
	"homeserve_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the success form of the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SessionCookie describes the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

type BaseHandler struct {
	cookie SessionCookie
}

func NewBaseHandler(cookie SessionCookie) *BaseHandler {
	return &BaseHandler{cookie: cookie}
}

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context
// Этот метод ДОЛЖЕН вызываться в каждом хендлере, который обращается к сервисам
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// Caller returns the identity resolved by the session middleware.
func (h *BaseHandler) Caller(c *gin.Context) auth.Identity {
	return middleware.GetIdentity(c)
}

// Bind decodes a JSON or form body into obj. An empty body leaves obj
// untouched so that the service reports the missing fields.
func (h *BaseHandler) Bind(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBind(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	logger.CtxWarn(c.Request.Context(), "Failed to bind request body", "error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
	return false
}

func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "Failed to bind query params", "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode < http.StatusInternalServerError {
			logger.CtxWarn(ctx, "Service error",
				"code", appErr.Code,
				"error", appErr.Message,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

func (h *BaseHandler) Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func (h *BaseHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *BaseHandler) clearSessionCookie(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
}

// ParseParamUint reads a positive integer path parameter.
func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key + " is not a positive integer")
	}
	return uint(value), nil
}
