package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ==================== 博客 ====================

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Blog 博客文章
// 旧数据只有 Content 字符串，新数据使用 ContentBlocks
type Blog struct {
	ID            string        `json:"_id,omitempty"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Image         string        `json:"image,omitempty"`
	Author        string        `json:"author,omitempty"`
	Status        string        `json:"status,omitempty"`
	Category      string        `json:"category,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	Content       string        `json:"content,omitempty"`
	ContentBlocks ContentBlocks `json:"contentBlocks,omitempty"`
	CreatedAt     *time.Time    `json:"createdAt,omitempty"`
}

// Blocks 编辑用的块列表，旧数据转成单个段落
func (b Blog) Blocks() ContentBlocks {
	if len(b.ContentBlocks) > 0 {
		return b.ContentBlocks
	}
	if b.Content != "" {
		return ContentBlocks{&ParagraphBlock{Content: b.Content}}
	}
	return nil
}

// ParseTags 逗号分隔的标签
func ParseTags(text string) []string {
	var tags []string
	for _, t := range strings.Split(text, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ==================== 内容块 ====================

type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockImage     BlockType = "image"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
)

const DefaultHeadingLevel = 2

// ContentBlock 内容块，各类型字段由具体结构体约束
type ContentBlock interface {
	Kind() BlockType
}

type HeadingBlock struct {
	Level   int
	Content string
}

type ParagraphBlock struct {
	Content string
}

// ImageBlock File 非空表示本次新选的本地图片，提交后替换为上传地址
type ImageBlock struct {
	Content string
	Alt     string
	Caption string
	File    *Upload
}

type ListBlock struct {
	Items []string
}

type QuoteBlock struct {
	Content string
}

func (*HeadingBlock) Kind() BlockType   { return BlockHeading }
func (*ParagraphBlock) Kind() BlockType { return BlockParagraph }
func (*ImageBlock) Kind() BlockType     { return BlockImage }
func (*ListBlock) Kind() BlockType      { return BlockList }
func (*QuoteBlock) Kind() BlockType     { return BlockQuote }

// NewBlock 按类型创建默认块
func NewBlock(t BlockType) (ContentBlock, error) {
	switch t {
	case BlockHeading:
		return &HeadingBlock{Level: DefaultHeadingLevel}, nil
	case BlockParagraph:
		return &ParagraphBlock{}, nil
	case BlockImage:
		return &ImageBlock{}, nil
	case BlockList:
		return &ListBlock{Items: []string{""}}, nil
	case BlockQuote:
		return &QuoteBlock{}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", t)
	}
}

// WireBlock 后端 contentBlocks 数组元素
type WireBlock struct {
	Type       BlockType `json:"type"`
	Level      int       `json:"level,omitempty"`
	Content    string    `json:"content,omitempty"`
	Alt        string    `json:"alt,omitempty"`
	Caption    string    `json:"caption,omitempty"`
	Items      []string  `json:"items,omitempty"`
	ImageIndex *int      `json:"imageIndex,omitempty"`
}

// ToWire 块转为传输格式，不处理待上传文件
func ToWire(b ContentBlock) WireBlock {
	switch v := b.(type) {
	case *HeadingBlock:
		return WireBlock{Type: BlockHeading, Level: v.Level, Content: v.Content}
	case *ParagraphBlock:
		return WireBlock{Type: BlockParagraph, Content: v.Content}
	case *ImageBlock:
		return WireBlock{Type: BlockImage, Content: v.Content, Alt: v.Alt, Caption: v.Caption}
	case *ListBlock:
		return WireBlock{Type: BlockList, Items: append([]string(nil), v.Items...)}
	case *QuoteBlock:
		return WireBlock{Type: BlockQuote, Content: v.Content}
	}
	return WireBlock{}
}

// FromWire 传输格式转为块
func FromWire(w WireBlock) (ContentBlock, error) {
	switch w.Type {
	case BlockHeading:
		level := w.Level
		if level == 0 {
			level = DefaultHeadingLevel
		}
		return &HeadingBlock{Level: level, Content: w.Content}, nil
	case BlockParagraph:
		return &ParagraphBlock{Content: w.Content}, nil
	case BlockImage:
		return &ImageBlock{Content: w.Content, Alt: w.Alt, Caption: w.Caption}, nil
	case BlockList:
		items := append([]string{}, w.Items...)
		return &ListBlock{Items: items}, nil
	case BlockQuote:
		return &QuoteBlock{Content: w.Content}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", w.Type)
	}
}

// ContentBlocks 有序块列表，顺序即展示顺序
type ContentBlocks []ContentBlock

func (bs ContentBlocks) MarshalJSON() ([]byte, error) {
	wire := make([]WireBlock, 0, len(bs))
	for _, b := range bs {
		wire = append(wire, ToWire(b))
	}
	return json.Marshal(wire)
}

func (bs *ContentBlocks) UnmarshalJSON(data []byte) error {
	var wire []WireBlock
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	out := make(ContentBlocks, 0, len(wire))
	for i, w := range wire {
		b, err := FromWire(w)
		if err != nil {
			return fmt.Errorf("contentBlocks[%d]: %w", i, err)
		}
		out = append(out, b)
	}
	*bs = out
	return nil
}
