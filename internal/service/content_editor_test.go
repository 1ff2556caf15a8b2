package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
)

func kinds(bs model.ContentBlocks) []model.BlockType {
	out := make([]model.BlockType, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Kind())
	}
	return out
}

func TestContentEditor_DefaultHeading(t *testing.T) {
	e := NewContentEditor(nil)
	require.Equal(t, 1, e.Len())
	h, ok := e.Blocks()[0].(*model.HeadingBlock)
	require.True(t, ok)
	assert.Equal(t, model.DefaultHeadingLevel, h.Level)
}

func TestContentEditor_Reorder(t *testing.T) {
	e := NewContentEditor(model.ContentBlocks{
		&model.HeadingBlock{Level: 2, Content: "Intro"},
		&model.ParagraphBlock{Content: "Body"},
		&model.QuoteBlock{Content: "Quote"},
	})

	// 边界为空操作
	assert.False(t, e.MoveUp(0))
	assert.False(t, e.MoveDown(2))
	assert.False(t, e.MoveUp(7))
	assert.Equal(t, []model.BlockType{model.BlockHeading, model.BlockParagraph, model.BlockQuote}, kinds(e.Blocks()))

	assert.True(t, e.MoveUp(1))
	assert.Equal(t, []model.BlockType{model.BlockParagraph, model.BlockHeading, model.BlockQuote}, kinds(e.Blocks()))

	assert.True(t, e.MoveDown(1))
	assert.Equal(t, []model.BlockType{model.BlockParagraph, model.BlockQuote, model.BlockHeading}, kinds(e.Blocks()))

	require.NoError(t, e.Remove(0))
	assert.Error(t, e.Remove(5))
	assert.Equal(t, []model.BlockType{model.BlockQuote, model.BlockHeading}, kinds(e.Blocks()))
}

func TestContentEditor_Edit(t *testing.T) {
	e := NewContentEditor(nil)
	require.NoError(t, e.SetText(0, "Title"))
	require.NoError(t, e.SetHeadingLevel(0, 3))
	assert.Error(t, e.SetHeadingLevel(0, 7))

	li, err := e.Append(model.BlockList)
	require.NoError(t, err)
	assert.Error(t, e.SetText(li, "nope"))
	assert.Error(t, e.SetHeadingLevel(li, 2))

	require.NoError(t, e.UpdateListItem(li, 0, "one"))
	require.NoError(t, e.AddListItem(li))
	require.NoError(t, e.AddListItem(li))
	require.NoError(t, e.UpdateListItem(li, 2, "three"))
	assert.Error(t, e.UpdateListItem(li, 3, "x"))

	_, err = e.Append("video")
	assert.Error(t, err)

	wire, uploads := e.Serialize()
	assert.Empty(t, uploads)
	require.Len(t, wire, 2)
	assert.Equal(t, model.WireBlock{Type: model.BlockHeading, Level: 3, Content: "Title"}, wire[0])
	// 空列表项不提交
	assert.Equal(t, []string{"one", "three"}, wire[1].Items)

	require.NoError(t, e.RemoveListItem(li, 0))
	assert.Equal(t, []string{"", "three"}, e.Blocks()[li].(*model.ListBlock).Items)
}

func TestContentEditor_SerializeRoundTrip(t *testing.T) {
	e := NewContentEditor(model.ContentBlocks{
		&model.HeadingBlock{Level: 1, Content: "H"},
		&model.ListBlock{Items: []string{"a", "b", "c"}},
		&model.ImageBlock{Content: "https://cdn/existing.png", Alt: "alt"},
		&model.QuoteBlock{Content: "Q"},
	})
	wire, uploads := e.Serialize()
	assert.Empty(t, uploads)

	data, err := json.Marshal(wire)
	require.NoError(t, err)
	var back model.ContentBlocks
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, e.Blocks(), back)
}

func TestContentEditor_ImageUploads(t *testing.T) {
	e := NewContentEditor(model.ContentBlocks{&model.ParagraphBlock{Content: "p"}})
	first, _ := e.Append(model.BlockImage)
	second, _ := e.Append(model.BlockImage)
	require.NoError(t, e.SetImage(first, pngUpload("a.png"), "A", ""))
	require.NoError(t, e.SetImage(second, pngUpload("b.png"), "B", "cap"))
	assert.Error(t, e.SetImage(0, pngUpload("c.png"), "", ""))

	wire, uploads := e.Serialize()
	require.Len(t, uploads, 2)
	assert.Equal(t, "a.png", uploads[0].Name)
	require.NotNil(t, wire[second].ImageIndex)
	assert.Equal(t, 1, *wire[second].ImageIndex)

	done, err := ApplyUploadedURLs(wire, []string{"https://cdn/a.png", "https://cdn/b.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/b.png", done[second].Content)
	assert.Nil(t, done[second].ImageIndex)
	// 原切片不受影响
	assert.NotNil(t, wire[second].ImageIndex)

	_, err = ApplyUploadedURLs(wire, []string{"https://cdn/a.png"})
	assert.Error(t, err)
}

// ==================== 博客 ====================

func TestBlogService_Save(t *testing.T) {
	repo := &fakeBlogRepo{urls: []string{"https://cdn/body.png"}}
	svc := NewBlogService(repo, nil)
	ctx := context.Background()

	_, err := svc.Save(ctx, testActor, "", BlogInput{Title: "Hi", Excerpt: ""})
	assert.Error(t, err)
	_, err = svc.Save(ctx, testActor, "", BlogInput{Title: "Hi", Excerpt: "x"})
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "image", ve.Field)
	_, err = svc.Save(ctx, testActor, "", BlogInput{Title: "Hi", Excerpt: "x", Status: "archived", Cover: pngUpload("c.png")})
	assert.Error(t, err)
	assert.Zero(t, repo.called("Save"))

	wire, err := svc.Save(ctx, testActor, "", BlogInput{
		Title:   " Care guide ",
		Excerpt: "How to clean",
		Tags:    "care, , tips ",
		Cover:   pngUpload("cover.png"),
		Blocks: model.ContentBlocks{
			&model.ParagraphBlock{Content: "Intro"},
			&model.ImageBlock{File: pngUpload("body.png"), Alt: "body"},
		},
	})
	require.NoError(t, err)
	require.Len(t, wire, 2)
	assert.Equal(t, "https://cdn/body.png", wire[1].Content)

	assert.Equal(t, "Care guide", repo.lastFields["title"])
	assert.Equal(t, model.BlogStatusDraft, repo.lastFields["status"])
	assert.Equal(t, "care,tips", repo.lastFields["tags"])
	assert.Contains(t, repo.lastFields["contentBlocks"], `"imageIndex":0`)
	assert.Len(t, repo.lastUploads, 1)
}

func TestBlogService_EditWithoutCover(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo, nil)

	legacy := model.Blog{Content: "old text"}
	wire, err := svc.Save(context.Background(), testActor, "b1", BlogInput{
		Title:   "Old",
		Excerpt: "e",
		Status:  model.BlogStatusPublished,
		Blocks:  legacy.Blocks(),
	})
	require.NoError(t, err)
	assert.Equal(t, []model.WireBlock{{Type: model.BlockParagraph, Content: "old text"}}, wire)
	assert.Equal(t, "b1", repo.lastID)
	assert.Nil(t, repo.lastCover)
}
