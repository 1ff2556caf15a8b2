package model

import (
	"bytes"
	"io"
)

// Upload 管理员上传的文件，转发给后端
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

func (u *Upload) Size() int64 {
	if u == nil {
		return 0
	}
	return int64(len(u.Data))
}

func (u *Upload) Reader() io.Reader {
	return bytes.NewReader(u.Data)
}
