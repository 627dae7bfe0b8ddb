package odontograma

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorProntuario(db *gorm.DB, prontuarioID uint) (*Odontograma, error)
	AdicionarProcedimento(db *gorm.DB, prontuarioID uint, proc *ProcedimentoOdontograma) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorProntuario(db *gorm.DB, prontuarioID uint) (*Odontograma, error) {
	var o Odontograma
	err := db.Preload("Procedimentos").
		Where("prontuario_id = ?", prontuarioID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// AdicionarProcedimento cria o odontograma do prontuário na primeira gravação
// (FirstOrCreate apoiado pelo índice único em prontuario_id) e insere o
// procedimento, tudo na mesma transação.
func (r *repositoryImpl) AdicionarProcedimento(db *gorm.DB, prontuarioID uint, proc *ProcedimentoOdontograma) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var o Odontograma
		if err := tx.Where(Odontograma{ProntuarioID: prontuarioID}).
			FirstOrCreate(&o).Error; err != nil {
			return err
		}
		proc.OdontogramaID = o.ID
		return tx.Create(proc).Error
	})
}
