package service

import (
	"fmt"
	"strings"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

// ContentEditor 博客正文块的有序编辑
// 越界下标返回错误；首块上移、末块下移为空操作
type ContentEditor struct {
	blocks model.ContentBlocks
}

// NewContentEditor 空正文默认带一个二级标题块
func NewContentEditor(initial model.ContentBlocks) *ContentEditor {
	e := &ContentEditor{}
	if len(initial) == 0 {
		e.blocks = model.ContentBlocks{&model.HeadingBlock{Level: model.DefaultHeadingLevel}}
		return e
	}
	e.blocks = append(model.ContentBlocks{}, initial...)
	return e
}

func (e *ContentEditor) Blocks() model.ContentBlocks {
	return e.blocks
}

func (e *ContentEditor) Len() int {
	return len(e.blocks)
}

// Append 追加指定类型的默认块，返回其下标
func (e *ContentEditor) Append(t model.BlockType) (int, error) {
	b, err := model.NewBlock(t)
	if err != nil {
		return -1, invalid("type", "%s", err.Error())
	}
	e.blocks = append(e.blocks, b)
	return len(e.blocks) - 1, nil
}

// MoveUp 与前一块交换，返回是否移动
func (e *ContentEditor) MoveUp(i int) bool {
	if i <= 0 || i >= len(e.blocks) {
		return false
	}
	e.blocks[i-1], e.blocks[i] = e.blocks[i], e.blocks[i-1]
	return true
}

// MoveDown 与后一块交换，返回是否移动
func (e *ContentEditor) MoveDown(i int) bool {
	if i < 0 || i >= len(e.blocks)-1 {
		return false
	}
	e.blocks[i], e.blocks[i+1] = e.blocks[i+1], e.blocks[i]
	return true
}

func (e *ContentEditor) Remove(i int) error {
	if err := e.check(i); err != nil {
		return err
	}
	e.blocks = append(e.blocks[:i], e.blocks[i+1:]...)
	return nil
}

// SetText 修改标题、段落、引用、图片地址的文本
func (e *ContentEditor) SetText(i int, content string) error {
	if err := e.check(i); err != nil {
		return err
	}
	switch b := e.blocks[i].(type) {
	case *model.HeadingBlock:
		b.Content = content
	case *model.ParagraphBlock:
		b.Content = content
	case *model.QuoteBlock:
		b.Content = content
	case *model.ImageBlock:
		b.Content = content
	default:
		return invalid("content", "Block %d (%s) has no text content", i, b.Kind())
	}
	return nil
}

func (e *ContentEditor) SetHeadingLevel(i, level int) error {
	if err := e.check(i); err != nil {
		return err
	}
	h, ok := e.blocks[i].(*model.HeadingBlock)
	if !ok {
		return invalid("level", "Block %d is not a heading", i)
	}
	if level < 1 || level > 6 {
		return invalid("level", "Heading level must be between 1 and 6")
	}
	h.Level = level
	return nil
}

// SetImage 选择本地图片，提交时上传
func (e *ContentEditor) SetImage(i int, file *model.Upload, alt, caption string) error {
	if err := e.check(i); err != nil {
		return err
	}
	img, ok := e.blocks[i].(*model.ImageBlock)
	if !ok {
		return invalid("image", "Block %d is not an image", i)
	}
	img.File = file
	img.Alt = alt
	img.Caption = caption
	return nil
}

// ==================== 列表项 ====================

func (e *ContentEditor) AddListItem(i int) error {
	l, err := e.list(i)
	if err != nil {
		return err
	}
	l.Items = append(l.Items, "")
	return nil
}

func (e *ContentEditor) UpdateListItem(i, j int, text string) error {
	l, err := e.list(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(l.Items) {
		return invalid("items", "List item %d out of range", j)
	}
	l.Items[j] = text
	return nil
}

func (e *ContentEditor) RemoveListItem(i, j int) error {
	l, err := e.list(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(l.Items) {
		return invalid("items", "List item %d out of range", j)
	}
	l.Items = append(l.Items[:j], l.Items[j+1:]...)
	return nil
}

func (e *ContentEditor) list(i int) (*model.ListBlock, error) {
	if err := e.check(i); err != nil {
		return nil, err
	}
	l, ok := e.blocks[i].(*model.ListBlock)
	if !ok {
		return nil, invalid("items", "Block %d is not a list", i)
	}
	return l, nil
}

func (e *ContentEditor) check(i int) error {
	if i < 0 || i >= len(e.blocks) {
		return invalid("index", "Block %d out of range", i)
	}
	return nil
}

// ==================== 提交格式 ====================

// Serialize 转为后端 contentBlocks，顺序不变
// 带本地文件的图片块写入 imageIndex，对应返回的上传列表下标；空列表项被丢弃
func (e *ContentEditor) Serialize() ([]model.WireBlock, []*model.Upload) {
	wire := make([]model.WireBlock, 0, len(e.blocks))
	var uploads []*model.Upload

	for _, b := range e.blocks {
		w := model.ToWire(b)
		switch v := b.(type) {
		case *model.ListBlock:
			items := []string{}
			for _, it := range v.Items {
				if strings.TrimSpace(it) != "" {
					items = append(items, it)
				}
			}
			w.Items = items
		case *model.ImageBlock:
			if v.File != nil && len(v.File.Data) > 0 {
				uploads = append(uploads, v.File)
				idx := len(uploads) - 1
				w.ImageIndex = &idx
				w.Content = ""
			}
		}
		wire = append(wire, w)
	}
	return wire, uploads
}

// ApplyUploadedURLs 用上传结果替换 imageIndex 占位
func ApplyUploadedURLs(wire []model.WireBlock, urls []string) ([]model.WireBlock, error) {
	out := make([]model.WireBlock, len(wire))
	copy(out, wire)
	for i := range out {
		if out[i].Type != model.BlockImage || out[i].ImageIndex == nil {
			continue
		}
		idx := *out[i].ImageIndex
		if idx < 0 || idx >= len(urls) {
			return nil, fmt.Errorf("contentBlocks[%d]: uploaded image %d missing (got %d)", i, idx, len(urls))
		}
		out[i].Content = urls[idx]
		out[i].ImageIndex = nil
	}
	return out, nil
}
