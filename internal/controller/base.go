package controller

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/middleware"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/logger"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// ==================== 响应 ====================

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

// respondMsg 后端返回了提示信息时原样带回
func respondMsg(c *gin.Context, msg string, data any) {
	if msg == "" {
		msg = "success"
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": msg,
		"data":    data,
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": msg})
}

// respondError 按错误类型映射状态码
//
//	ValidationError  -> 400，提示原样返回
//	APIError         -> 后端状态码 (非 4xx/5xx 时 422)，后端 message 原样返回
//	TransportError   -> 502，通用提示
//	其他             -> 500，记录日志
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	if ve, ok := service.IsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": ve.Message,
			"data":    gin.H{"field": ve.Field},
		})
		return
	}

	if errors.Is(err, service.ErrSessionExpired) {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": err.Error()})
		return
	}

	if apiErr, ok := net.IsAPIError(err); ok {
		status := apiErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"code": status, "message": apiErr.Error()})
		return
	}

	if net.IsTransportError(err) {
		logger.L().Warn("后端请求失败", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": "店铺后端暂时不可用，请稍后重试"})
		return
	}

	logger.L().Error("未处理的错误", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "操作失败，请稍后重试"})
}

// ==================== 请求上下文 ====================

// actor 当前操作者 (已通过 SessionAuth)
func actor(c *gin.Context) service.Actor {
	return service.ActorFromSession(middleware.GetSession(c), middleware.GetRequestID(c))
}

// ==================== 表单解析 ====================

// formFile 读取可选的上传文件，未上传返回 nil
func formFile(c *gin.Context, field string) (*model.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		// 非 multipart 请求视为未上传
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return readUpload(fh)
}

// formFiles 读取同名的多个文件，保持上传顺序
func formFiles(c *gin.Context, field string) ([]*model.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]*model.Upload, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		u, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func readUpload(fh *multipart.FileHeader) (*model.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}
	return &model.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// parseAmount 空串视为 0
func parseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &service.ValidationError{Field: field, Message: fmt.Sprintf("%s must be a number", field)}
	}
	return d, nil
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid positive integer %q", raw)
	}
	return n, nil
}
