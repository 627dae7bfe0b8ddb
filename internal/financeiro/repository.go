package financeiro

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filtros struct {
	Busca      string
	Tipo       string
	Status     string
	DataInicio *time.Time
	DataFim    *time.Time
}

type Repository interface {
	Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]LancamentoFinanceiro, int64, error)
	BuscarPorID(db *gorm.DB, id uint) (*LancamentoFinanceiro, error)
	Salvar(db *gorm.DB, l *LancamentoFinanceiro) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]LancamentoFinanceiro, int64, error) {
	q := db.Model(&LancamentoFinanceiro{})

	if filtros.Busca != "" {
		busca := "%" + strings.ToLower(filtros.Busca) + "%"
		q = q.Where("LOWER(descricao) LIKE ? OR LOWER(categoria) LIKE ?", busca, busca)
	}
	if filtros.Tipo != "" {
		q = q.Where("tipo = ?", filtros.Tipo)
	}
	if filtros.Status != "" {
		q = q.Where("status = ?", filtros.Status)
	}
	if filtros.DataInicio != nil {
		q = q.Where("data >= ?", *filtros.DataInicio)
	}
	if filtros.DataFim != nil {
		q = q.Where("data <= ?", *filtros.DataFim)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var lancamentos []LancamentoFinanceiro
	err := q.Preload("Paciente").
		Order("data desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&lancamentos).Error
	return lancamentos, total, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*LancamentoFinanceiro, error) {
	var l LancamentoFinanceiro
	err := db.Preload("Paciente").First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *LancamentoFinanceiro) error {
	return db.Omit(clause.Associations).Save(l).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&LancamentoFinanceiro{}, id).Error
}
