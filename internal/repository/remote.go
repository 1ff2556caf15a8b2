package repository

import (
	"net/url"
	"strconv"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// 远程仓储：店铺后端的 REST 资源
// 每个方法的鉴权方式按后端接口固定，调用方传入会话中的 token

// uploadFile 上传文件转为请求文件，nil 表示未选择
func uploadFile(field string, u *model.Upload) *net.File {
	if u == nil || len(u.Data) == 0 {
		return nil
	}
	return &net.File{
		Field:       field,
		Name:        u.Name,
		ContentType: u.ContentType,
		Reader:      u.Reader(),
	}
}

// seg 转义路径段
func seg(s string) string {
	return url.PathEscape(s)
}

func boolField(b bool) string {
	return strconv.FormatBool(b)
}

func intField(n int) string {
	return strconv.Itoa(n)
}
