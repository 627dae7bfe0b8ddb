package profissional

import (
	"strings"

	"gorm.io/gorm"
)

type Filtros struct {
	Busca         string
	Especialidade string
}

type Repository interface {
	Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]Profissional, int64, error)
	ListarResumo(db *gorm.DB) ([]listaItemDTO, error)
	BuscarPorID(db *gorm.DB, id uint) (*Profissional, error)
	ExisteDuplicado(db *gorm.DB, cro, cpf, email string, ignorarID uint) (bool, error)
	Salvar(db *gorm.DB, p *Profissional) error
	ContarDependentes(db *gorm.DB, id uint) (int64, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]Profissional, int64, error) {
	q := db.Model(&Profissional{})

	if filtros.Busca != "" {
		busca := "%" + strings.ToLower(filtros.Busca) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR cro LIKE ? OR LOWER(email) LIKE ?", busca, "%"+filtros.Busca+"%", busca)
	}
	if filtros.Especialidade != "" {
		q = q.Where("especialidade = ?", filtros.Especialidade)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profissionais []Profissional
	err := q.Order("nome asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&profissionais).Error
	return profissionais, total, err
}

// ListarResumo retorna id/nome/status de todos, para selects e combos.
func (r *repositoryImpl) ListarResumo(db *gorm.DB) ([]listaItemDTO, error) {
	var itens []listaItemDTO
	err := db.Model(&Profissional{}).
		Select("id", "nome", "status").
		Order("nome asc").
		Find(&itens).Error
	return itens, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Profissional, error) {
	var p Profissional
	err := db.First(&p, id).Error
	return &p, err
}

// ExisteDuplicado verifica CRO, CPF e e-mail de uma vez; campos vazios são ignorados.
func (r *repositoryImpl) ExisteDuplicado(db *gorm.DB, cro, cpf, email string, ignorarID uint) (bool, error) {
	var condicoes []string
	var valores []interface{}
	if cro != "" {
		condicoes = append(condicoes, "cro = ?")
		valores = append(valores, cro)
	}
	if cpf != "" {
		condicoes = append(condicoes, "cpf = ?")
		valores = append(valores, cpf)
	}
	if email != "" {
		condicoes = append(condicoes, "email = ?")
		valores = append(valores, email)
	}
	if len(condicoes) == 0 {
		return false, nil
	}

	q := db.Model(&Profissional{}).Where(strings.Join(condicoes, " OR "), valores...)
	if ignorarID != 0 {
		q = q.Where("id <> ?", ignorarID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Profissional) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) ContarDependentes(db *gorm.DB, id uint) (int64, error) {
	var agendamentos int64
	err := db.Table("agendamentos").
		Where("profissional_id = ? AND deleted_at IS NULL", id).
		Count(&agendamentos).Error
	return agendamentos, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Profissional{}, id).Error
}
