package service

import (
	"context"
	"strings"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/model"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
)

// BrandDraft 新建品牌表单，型号先暂存在本地，随品牌一起提交
type BrandDraft struct {
	BrandName string
	Models    []model.PhoneModel
}

// AddModel 暂存型号，忽略大小写去重
func (d *BrandDraft) AddModel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("modelName", "Model name is required")
	}
	for _, m := range d.Models {
		if strings.EqualFold(m.ModelName, name) {
			return invalid("modelName", "Model %q already added", name)
		}
	}
	d.Models = append(d.Models, model.PhoneModel{ModelName: name})
	return nil
}

// RemoveModel 按下标移除暂存型号
func (d *BrandDraft) RemoveModel(i int) error {
	if i < 0 || i >= len(d.Models) {
		return invalid("models", "Model %d out of range", i)
	}
	d.Models = append(d.Models[:i], d.Models[i+1:]...)
	return nil
}

// PhoneBrandService 品牌与型号
type PhoneBrandService struct {
	repo  repository.PhoneBrandRepository
	audit *AuditService
}

func NewPhoneBrandService(repo repository.PhoneBrandRepository, audit *AuditService) *PhoneBrandService {
	return &PhoneBrandService{repo: repo, audit: audit}
}

func (s *PhoneBrandService) List(ctx context.Context) ([]model.PhoneBrand, error) {
	return s.repo.List(ctx)
}

func (s *PhoneBrandService) Create(ctx context.Context, who Actor, d BrandDraft) error {
	d, err := normalizeDraft(d)
	if err != nil {
		return err
	}
	err = s.repo.Create(ctx, d.BrandName, d.Models)
	s.audit.Record(ctx, who, model.AuditActionCreate, "phone_brand", "", d, err)
	return err
}

func (s *PhoneBrandService) Update(ctx context.Context, who Actor, id string, d BrandDraft) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Brand id is required")
	}
	d, err := normalizeDraft(d)
	if err != nil {
		return err
	}
	err = s.repo.Update(ctx, id, d.BrandName, d.Models)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "phone_brand", id, d, err)
	return err
}

func (s *PhoneBrandService) Delete(ctx context.Context, who Actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Brand id is required")
	}
	err := s.repo.Delete(ctx, id)
	s.audit.Record(ctx, who, model.AuditActionDelete, "phone_brand", id, nil, err)
	return err
}

// AddModel 给已有品牌添加型号
func (s *PhoneBrandService) AddModel(ctx context.Context, who Actor, id, modelName string) error {
	modelName = strings.TrimSpace(modelName)
	if strings.TrimSpace(id) == "" {
		return invalid("id", "Brand id is required")
	}
	if modelName == "" {
		return invalid("modelName", "Model name is required")
	}
	err := s.repo.AddModel(ctx, id, modelName)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "phone_brand", id, map[string]string{"addModel": modelName}, err)
	return err
}

func (s *PhoneBrandService) RemoveModel(ctx context.Context, who Actor, id, modelName string) error {
	if strings.TrimSpace(id) == "" || modelName == "" {
		return invalid("modelName", "Brand id and model name are required")
	}
	err := s.repo.RemoveModel(ctx, id, modelName)
	s.audit.Record(ctx, who, model.AuditActionUpdate, "phone_brand", id, map[string]string{"removeModel": modelName}, err)
	return err
}

// ToggleStatus 启用/停用，返回后端提示
func (s *PhoneBrandService) ToggleStatus(ctx context.Context, who Actor, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", invalid("id", "Brand id is required")
	}
	msg, err := s.repo.ToggleStatus(ctx, id)
	s.audit.Record(ctx, who, model.AuditActionStatus, "phone_brand", id, nil, err)
	return msg, err
}

func normalizeDraft(d BrandDraft) (BrandDraft, error) {
	out := BrandDraft{BrandName: strings.TrimSpace(d.BrandName)}
	if out.BrandName == "" {
		return out, invalid("brandName", "Brand name is required")
	}
	for _, m := range d.Models {
		if err := out.AddModel(m.ModelName); err != nil {
			return out, err
		}
	}
	if out.Models == nil {
		out.Models = []model.PhoneModel{}
	}
	return out, nil
}
