package net

import (
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// AuthMode 鉴权头的携带方式
// 后端各接口要求不一致：有的读 `token` 头，有的读 `Authorization: Bearer`，有的不需要
// 按接口逐个指定，不要统一
type AuthMode int

const (
	AuthNone AuthMode = iota
	AuthTokenHeader
	AuthBearer
)

func (m AuthMode) String() string {
	switch m {
	case AuthTokenHeader:
		return "token"
	case AuthBearer:
		return "bearer"
	default:
		return "none"
	}
}

// File 待上传的文件
type File struct {
	Field       string // 表单字段名，如 image1 / heroImage / contentImages
	Name        string
	ContentType string
	Reader      io.Reader
}

// Request 一次后端调用的描述
type Request struct {
	Method string
	Path   string
	Auth   AuthMode
	Token  string
	Query  map[string]string
	Body   any               // JSON 请求体
	Form   map[string]string // multipart 文本字段
	Files  []File
}

// NewRequest 构建请求
func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path}
}

// Get 构建 GET 请求
func Get(path string) *Request { return NewRequest(http.MethodGet, path) }

// Post 构建 POST 请求
func Post(path string) *Request { return NewRequest(http.MethodPost, path) }

// Put 构建 PUT 请求
func Put(path string) *Request { return NewRequest(http.MethodPut, path) }

// Patch 构建 PATCH 请求
func Patch(path string) *Request { return NewRequest(http.MethodPatch, path) }

// Delete 构建 DELETE 请求
func Delete(path string) *Request { return NewRequest(http.MethodDelete, path) }

// WithAuth 指定鉴权方式
func (r *Request) WithAuth(mode AuthMode, token string) *Request {
	r.Auth = mode
	r.Token = token
	return r
}

// WithQuery 追加查询参数，空值忽略
func (r *Request) WithQuery(key, value string) *Request {
	if value == "" {
		return r
	}
	if r.Query == nil {
		r.Query = make(map[string]string)
	}
	r.Query[key] = value
	return r
}

// WithJSON 设置 JSON 请求体
func (r *Request) WithJSON(body any) *Request {
	r.Body = body
	return r
}

// WithForm 设置 multipart 文本字段
func (r *Request) WithForm(form map[string]string) *Request {
	r.Form = form
	return r
}

// WithFile 追加上传文件，nil reader 忽略
func (r *Request) WithFile(f *File) *Request {
	if f == nil || f.Reader == nil {
		return r
	}
	r.Files = append(r.Files, *f)
	return r
}

// IsMultipart 是否以 multipart/form-data 发送
func (r *Request) IsMultipart() bool {
	return r.Form != nil || len(r.Files) > 0
}

// build 转为 resty 请求
func (r *Request) build(rr *resty.Request) *resty.Request {
	switch r.Auth {
	case AuthTokenHeader:
		rr.SetHeader("token", r.Token)
	case AuthBearer:
		rr.SetHeader("Authorization", "Bearer "+r.Token)
	}

	if len(r.Query) > 0 {
		rr.SetQueryParams(r.Query)
	}

	if r.IsMultipart() {
		form := r.Form
		if form == nil {
			form = map[string]string{}
		}
		rr.SetMultipartFormData(form)
		for _, f := range r.Files {
			rr.SetMultipartFields(&resty.MultipartField{
				Param:       f.Field,
				FileName:    f.Name,
				ContentType: f.ContentType,
				Reader:      f.Reader,
			})
		}
		return rr
	}

	if r.Body != nil {
		rr.SetHeader("Content-Type", "application/json")
		rr.SetBody(r.Body)
	}
	return rr
}
