package paciente

import (
	"strings"

	"gorm.io/gorm"
)

// Filtros da listagem de pacientes.
type Filtros struct {
	Busca  string
	Status string
}

type Repository interface {
	Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]Paciente, int64, error)
	BuscarPorID(db *gorm.DB, id uint) (*Paciente, error)
	ExisteCPF(db *gorm.DB, cpf string, ignorarID uint) (bool, error)
	Salvar(db *gorm.DB, p *Paciente) error
	ContarDependentes(db *gorm.DB, id uint) (int64, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]Paciente, int64, error) {
	q := db.Model(&Paciente{})

	status := filtros.Status
	if status == "" {
		status = StatusAtivo
	}
	q = q.Where("status = ?", status)

	if filtros.Busca != "" {
		busca := "%" + strings.ToLower(filtros.Busca) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR cpf LIKE ? OR telefone_celular LIKE ?", busca, "%"+filtros.Busca+"%", "%"+filtros.Busca+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pacientes []Paciente
	err := q.Order("nome asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pacientes).Error
	return pacientes, total, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Paciente, error) {
	var p Paciente
	err := db.First(&p, id).Error
	return &p, err
}

// ExisteCPF verifica a unicidade do CPF, ignorando o próprio registro em updates.
func (r *repositoryImpl) ExisteCPF(db *gorm.DB, cpf string, ignorarID uint) (bool, error) {
	q := db.Model(&Paciente{}).Where("cpf = ?", cpf)
	if ignorarID != 0 {
		q = q.Where("id <> ?", ignorarID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Paciente) error {
	return db.Save(p).Error
}

// ContarDependentes conta agendamentos e prontuários que referenciam o paciente.
// Consulta por nome de tabela para não importar os pacotes acima nesta camada.
func (r *repositoryImpl) ContarDependentes(db *gorm.DB, id uint) (int64, error) {
	var agendamentos int64
	if err := db.Table("agendamentos").
		Where("paciente_id = ? AND deleted_at IS NULL", id).
		Count(&agendamentos).Error; err != nil {
		return 0, err
	}
	var prontuarios int64
	if err := db.Table("prontuarios").
		Where("paciente_id = ? AND deleted_at IS NULL", id).
		Count(&prontuarios).Error; err != nil {
		return 0, err
	}
	return agendamentos + prontuarios, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Paciente{}, id).Error
}
