// Package validation 表单校验工具
// 全部为纯函数：不做 I/O，不 panic，非法输入只通过返回值表达
package validation

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxImageSize 普通图片上传上限 5MB
	MaxImageSize int64 = 5 * 1024 * 1024
	// MaxInputLength SanitizeInput 截断长度
	MaxInputLength = 10000
	// MinPasswordLength 管理员密码最小长度
	MinPasswordLength = 6
)

// AllowedImageTypes 允许上传的图片 MIME
var AllowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hexRegex   = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\u00a0", "&nbsp;",
	)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// ValidateRequired 字符串去空白后非空；其它类型非 nil 即可
func ValidateRequired(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return false
		}
		if rv.Kind() == reflect.Pointer {
			return ValidateRequired(rv.Elem().Interface())
		}
	}
	return true
}

// ValidateNumber 值能完整解析为数字（NaN 视为非法）
func ValidateNumber(value any) bool {
	_, ok := toFloat(value)
	return ok
}

func ValidatePositiveNumber(value any) bool {
	f, ok := toFloat(value)
	return ok && f > 0
}

// ValidateURL 必须是带 scheme 的绝对地址
func ValidateURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return u.Host != ""
	}
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}

func ValidateHexColor(hex string) bool {
	return hexRegex.MatchString(hex)
}

// FileMeta 上传文件的描述信息
type FileMeta struct {
	Name string
	Type string // MIME
	Size int64
}

// ImageCheck 图片校验结果
type ImageCheck struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateImageFile 校验图片类型与大小 (上限 MaxImageSize)
func ValidateImageFile(file *FileMeta) ImageCheck {
	return ValidateImageFileWithLimit(file, MaxImageSize)
}

// ValidateImageFileWithLimit 自定义大小上限的图片校验
func ValidateImageFileWithLimit(file *FileMeta, maxSize int64) ImageCheck {
	if file == nil {
		return ImageCheck{Valid: false, Error: "No file provided"}
	}

	if !isAllowedImageType(file.Type) {
		return ImageCheck{Valid: false, Error: "Invalid file type. Only JPEG, PNG, WebP and GIF are allowed."}
	}

	if file.Size > maxSize {
		return ImageCheck{Valid: false, Error: fmt.Sprintf("File size exceeds %dMB limit.", maxSize/(1024*1024))}
	}

	return ImageCheck{Valid: true}
}

func isAllowedImageType(t string) bool {
	for _, allowed := range AllowedImageTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// SanitizeInput 去首尾空白、移除尖括号、截断到 MaxInputLength 个字符
func SanitizeInput(input string) string {
	s := strings.TrimSpace(input)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	if utf8.RuneCountInString(s) > MaxInputLength {
		s = string([]rune(s)[:MaxInputLength])
	}
	return s
}

// SanitizeHTML 按文本节点序列化规则转义
func SanitizeHTML(html string) string {
	return htmlEscaper.Replace(html)
}

// ==================== Schema 校验 ====================

// 字段类型
const (
	TypeEmail    = "email"
	TypeNumber   = "number"
	TypePositive = "positive"
	TypeURL      = "url"
)

// Rule 单个字段的校验规则
type Rule struct {
	Label     string
	Required  bool
	Type      string
	MinLength int
	MaxLength int
}

// Schema 字段名 -> 规则
type Schema map[string]Rule

// FormResult 校验结果
type FormResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// ValidateFormData 按 schema 校验表单
// 同一字段多条规则失败时，后面的规则覆盖前面的错误信息
func ValidateFormData(data map[string]any, schema Schema) FormResult {
	errs := make(map[string]string)

	for field, rule := range schema {
		value := data[field]
		label := rule.Label
		if label == "" {
			label = field
		}

		if rule.Required && !ValidateRequired(value) {
			errs[field] = label + " is required"
			continue
		}

		if !truthy(value) {
			continue
		}

		str, isStr := value.(string)

		switch rule.Type {
		case TypeEmail:
			if !isStr || !ValidateEmail(str) {
				errs[field] = label + " must be a valid email"
			}
		case TypeNumber:
			if !ValidateNumber(value) {
				errs[field] = label + " must be a number"
			}
		case TypePositive:
			if !ValidatePositiveNumber(value) {
				errs[field] = label + " must be a positive number"
			}
		case TypeURL:
			if !isStr || !ValidateURL(str) {
				errs[field] = label + " must be a valid URL"
			}
		}

		n, hasLen := length(value)
		if hasLen && rule.MinLength > 0 && n < rule.MinLength {
			errs[field] = fmt.Sprintf("%s must be at least %d characters", label, rule.MinLength)
		}
		if hasLen && rule.MaxLength > 0 && n > rule.MaxLength {
			errs[field] = fmt.Sprintf("%s must not exceed %d characters", label, rule.MaxLength)
		}
	}

	return FormResult{IsValid: len(errs) == 0, Errors: errs}
}

// ==================== 内部工具 ====================

func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// truthy 空字符串、0、false、nil 视为假
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	}
	if f, ok := toFloat(value); ok {
		return f != 0
	}
	return ValidateRequired(value)
}

func length(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}
