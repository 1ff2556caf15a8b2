package service

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/validation"
)

// MaxDesignAssetSize 设计素材允许更大的图片
const MaxDesignAssetSize int64 = 10 * 1024 * 1024

// checkImage 校验上传图片；未声明类型时按内容识别
func checkImage(field string, u *model.Upload, maxSize int64) error {
	if u == nil || len(u.Data) == 0 {
		return invalid(field, "No file provided")
	}

	ct := strings.ToLower(strings.TrimSpace(u.ContentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" {
		ct = mimetype.Detect(u.Data).String()
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = ct[:i]
		}
		u.ContentType = ct
	}

	res := validation.ValidateImageFileWithLimit(&validation.FileMeta{
		Name: u.Name,
		Type: ct,
		Size: u.Size(),
	}, maxSize)
	if !res.Valid {
		return invalid(field, "%s", res.Error)
	}
	return nil
}

// checkOptionalImage 未上传时跳过
func checkOptionalImage(field string, u *model.Upload, maxSize int64) error {
	if u == nil || len(u.Data) == 0 {
		return nil
	}
	return checkImage(field, u, maxSize)
}
