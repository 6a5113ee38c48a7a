package repository

import "figchat/entities"

type FigureRepository interface {
	Create(f *entities.Figure) error
	FindByID(id uint) (*entities.Figure, error)
	List() ([]entities.Figure, error)
	Update(f *entities.Figure) error
	Delete(id uint) error
}
