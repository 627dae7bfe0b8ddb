package documento

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListarPorPaciente(db *gorm.DB, pacienteID uint) ([]Documento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Documento, error)
	Salvar(db *gorm.DB, d *Documento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarPorPaciente(db *gorm.DB, pacienteID uint) ([]Documento, error) {
	var documentos []Documento
	err := db.Where("paciente_id = ?", pacienteID).
		Order("created_at desc").
		Find(&documentos).Error
	return documentos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Documento, error) {
	var d Documento
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Documento) error {
	return db.Omit(clause.Associations).Save(d).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Documento{}, id).Error
}
