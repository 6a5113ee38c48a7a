package repositoryImp

import (
	"gorm.io/gorm"

	"figchat/entities"
	"figchat/pkg/rag/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DocumentRepository { return &repo{db} }

func (r *repo) Create(d *entities.Document) error { return r.db.Create(d).Error }
func (r *repo) Delete(docID uint) error {
	return r.db.Delete(&entities.Document{}, docID).Error
}
func (r *repo) ByFigure(figureID uint) ([]entities.Document, error) {
	var ds []entities.Document
	return ds, r.db.Where("figure_id = ?", figureID).Order("doc_id").Find(&ds).Error
}
func (r *repo) DeleteByFigure(figureID uint) error {
	return r.db.Where("figure_id = ?", figureID).Delete(&entities.Document{}).Error
}
