package repositoryImp

import (
	"gorm.io/gorm"

	"figchat/entities"
	"figchat/pkg/figure/repository"
)

type figureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FigureRepository { return &figureRepo{db} }

func (r *figureRepo) Create(f *entities.Figure) error { return r.db.Create(f).Error }

func (r *figureRepo) FindByID(id uint) (*entities.Figure, error) {
	var f entities.Figure
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *figureRepo) List() ([]entities.Figure, error) {
	var fs []entities.Figure
	return fs, r.db.Order("name").Find(&fs).Error
}

func (r *figureRepo) Update(f *entities.Figure) error { return r.db.Save(f).Error }

func (r *figureRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Figure{}, id).Error
}
