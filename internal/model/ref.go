package model

import (
	"bytes"
	"encoding/json"
)

// Ref 后端 Mongo 引用字段
// 未 populate 时是 id 字符串，populate 后是对象；两种形态统一解析到这里
type Ref struct {
	ID        string   `json:"_id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	Level     int      `json:"level,omitempty"`
	Image     string   `json:"image,omitempty"`
	Images    []string `json:"images,omitempty"`
	HeroImage string   `json:"heroImage,omitempty"`
	Email     string   `json:"email,omitempty"`
}

// Populated 是否为展开后的对象
func (r Ref) Populated() bool {
	return r.Name != "" || r.Image != "" || len(r.Images) > 0 || r.HeroImage != "" || r.Email != ""
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	t := bytes.TrimSpace(b)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if t[0] == '"' {
		var id string
		if err := json.Unmarshal(t, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	type alias Ref
	var aux struct {
		alias
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(t, &aux); err != nil {
		return err
	}
	*r = Ref(aux.alias)
	if r.ID == "" {
		r.ID = aux.AltID
	}
	return nil
}

// MarshalJSON 只有 id 时写回字符串，保持后端原格式
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.Populated() && r.Type == "" && r.Level == 0 {
		return json.Marshal(r.ID)
	}
	type alias Ref
	return json.Marshal(alias(r))
}

// RefIDs 提取 id 列表
func RefIDs(refs []Ref) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
