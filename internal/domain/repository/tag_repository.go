package repository

import "github.com/jhoicas/crm-pro/internal/domain/entity"

// TagRepository puerto de persistencia para Tag.
type TagRepository interface {
	Create(name string) *entity.Tag
	Find(id int) (*entity.Tag, bool)
	Remove(id int)
	All() []*entity.Tag
	Search(term string) []*entity.Tag
}
