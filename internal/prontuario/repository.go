package prontuario

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListarPorPaciente(db *gorm.DB, pacienteID uint) ([]Prontuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Prontuario, error)
	BuscarDoPaciente(db *gorm.DB, id, pacienteID uint) (*Prontuario, error)
	Salvar(db *gorm.DB, p *Prontuario) error
	DeletarComOdontograma(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarPorPaciente(db *gorm.DB, pacienteID uint) ([]Prontuario, error) {
	var prontuarios []Prontuario
	err := db.Where("paciente_id = ?", pacienteID).
		Order("data desc").
		Find(&prontuarios).Error
	return prontuarios, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Prontuario, error) {
	var p Prontuario
	err := db.Preload("Paciente").First(&p, id).Error
	return &p, err
}

// BuscarDoPaciente só encontra o prontuário se ele pertencer ao paciente informado.
func (r *repositoryImpl) BuscarDoPaciente(db *gorm.DB, id, pacienteID uint) (*Prontuario, error) {
	var p Prontuario
	err := db.Where("id = ? AND paciente_id = ?", id, pacienteID).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Prontuario) error {
	return db.Omit(clause.Associations).Save(p).Error
}

// DeletarComOdontograma remove, na mesma transação, os procedimentos do
// odontograma, o odontograma e por fim o prontuário.
func (r *repositoryImpl) DeletarComOdontograma(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var odontogramaIDs []uint
		if err := tx.Table("odontogramas").
			Where("prontuario_id = ?", id).
			Pluck("id", &odontogramaIDs).Error; err != nil {
			return err
		}
		if len(odontogramaIDs) > 0 {
			if err := tx.Exec("DELETE FROM procedimento_odontogramas WHERE odontograma_id IN ?", odontogramaIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM odontogramas WHERE prontuario_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&Prontuario{}, id).Error
	})
}
