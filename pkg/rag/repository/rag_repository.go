package repository

import "figchat/entities"

type DocumentRepository interface {
	Create(d *entities.Document) error
	Delete(docID uint) error
	ByFigure(figureID uint) ([]entities.Document, error)
	DeleteByFigure(figureID uint) error
}
