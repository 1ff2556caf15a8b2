package repository

import (
	"context"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/pkg/net"
)

// BlogRepository 博客接口，写操作使用 Bearer
type BlogRepository interface {
	List(ctx context.Context) ([]model.Blog, error)
	// Save id 为空时创建，返回按上传顺序排列的内容图片地址
	Save(ctx context.Context, token, id string, fields map[string]string, cover *model.Upload, contentImages []*model.Upload) ([]string, error)
	Delete(ctx context.Context, token, id string) error
}

type blogRepo struct {
	d net.Dispatcher
}

func NewBlogRepository(d net.Dispatcher) BlogRepository {
	return &blogRepo{d: d}
}

func (r *blogRepo) List(ctx context.Context) ([]model.Blog, error) {
	env, err := r.d.Send(ctx, net.Get("/api/blogs"))
	if err != nil {
		return nil, err
	}
	blogs := []model.Blog{}
	err = env.DecodeList(&blogs, "blogs", "data", "items")
	return blogs, err
}

func (r *blogRepo) Save(ctx context.Context, token, id string, fields map[string]string, cover *model.Upload, contentImages []*model.Upload) ([]string, error) {
	req := net.Post("/api/blogs")
	if id != "" {
		req = net.Put("/api/blogs/" + seg(id))
	}
	req.WithAuth(net.AuthBearer, token).
		WithForm(fields).
		WithFile(uploadFile("image", cover))
	for _, img := range contentImages {
		req.WithFile(uploadFile("contentImages", img))
	}

	env, err := r.d.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	var uploaded []struct {
		URL string `json:"url"`
	}
	if _, err := env.Decode("uploadedImages", &uploaded); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(uploaded))
	for _, u := range uploaded {
		urls = append(urls, u.URL)
	}
	return urls, nil
}

func (r *blogRepo) Delete(ctx context.Context, token, id string) error {
	_, err := r.d.Send(ctx, net.Delete("/api/blogs/"+seg(id)).WithAuth(net.AuthBearer, token))
	return err
}
