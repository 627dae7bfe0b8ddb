package agendamento

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrConflitoHorario indica que o intervalo pedido colide com outro
// agendamento não cancelado do mesmo profissional no mesmo dia.
var ErrConflitoHorario = errors.New("horário não disponível")

type Filtros struct {
	Data           *time.Time
	ProfissionalID uint
	PacienteID     uint
	Status         string
}

type Repository interface {
	Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]Agendamento, int64, error)
	ListarDoDia(db *gorm.DB, dia time.Time) ([]Agendamento, error)
	ListarProximos(db *gorm.DB, aPartirDe time.Time, limit int) ([]Agendamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Agendamento, error)
	TemConflito(db *gorm.DB, profissionalID uint, data, horaInicio, horaFim time.Time, ignorarID uint) (bool, error)
	CriarComVerificacao(db *gorm.DB, a *Agendamento) error
	SalvarComVerificacao(db *gorm.DB, a *Agendamento, verificarConflito bool) error
	Salvar(db *gorm.DB, a *Agendamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// janelaDoDia devolve [00:00, 24:00) do dia de referência.
func janelaDoDia(ref time.Time) (time.Time, time.Time) {
	inicio := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return inicio, inicio.Add(24 * time.Hour)
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtros Filtros, page, limit int) ([]Agendamento, int64, error) {
	q := db.Model(&Agendamento{})

	if filtros.Data != nil {
		inicio, fim := janelaDoDia(*filtros.Data)
		q = q.Where("data >= ? AND data < ?", inicio, fim)
	}
	if filtros.ProfissionalID != 0 {
		q = q.Where("profissional_id = ?", filtros.ProfissionalID)
	}
	if filtros.PacienteID != 0 {
		q = q.Where("paciente_id = ?", filtros.PacienteID)
	}
	if filtros.Status != "" {
		q = q.Where("status = ?", filtros.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var agendamentos []Agendamento
	err := q.Preload("Paciente").
		Preload("Profissional").
		Order("data asc, hora_inicio asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&agendamentos).Error
	return agendamentos, total, err
}

func (r *repositoryImpl) ListarDoDia(db *gorm.DB, dia time.Time) ([]Agendamento, error) {
	inicio, fim := janelaDoDia(dia)
	var agendamentos []Agendamento
	err := db.Where("data >= ? AND data < ?", inicio, fim).
		Preload("Paciente").
		Preload("Profissional").
		Order("hora_inicio asc").
		Find(&agendamentos).Error
	return agendamentos, err
}

func (r *repositoryImpl) ListarProximos(db *gorm.DB, aPartirDe time.Time, limit int) ([]Agendamento, error) {
	inicio, _ := janelaDoDia(aPartirDe)
	var agendamentos []Agendamento
	err := db.Where("data >= ?", inicio).
		Where("status <> ?", StatusCancelado).
		Preload("Paciente").
		Preload("Profissional").
		Order("data asc, hora_inicio asc").
		Limit(limit).
		Find(&agendamentos).Error
	return agendamentos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Agendamento, error) {
	var a Agendamento
	err := db.Preload("Paciente").Preload("Profissional").First(&a, id).Error
	return &a, err
}

// TemConflito aplica a regra de sobreposição de intervalos semiabertos:
// há conflito sse inicio_existente < fim_novo E fim_existente > inicio_novo,
// entre agendamentos não cancelados do mesmo profissional no mesmo dia.
// Intervalos de duração zero nunca conflitam, de nenhum dos lados.
func (r *repositoryImpl) TemConflito(db *gorm.DB, profissionalID uint, data, horaInicio, horaFim time.Time, ignorarID uint) (bool, error) {
	if !horaInicio.Before(horaFim) {
		return false, nil
	}
	inicioDia, fimDia := janelaDoDia(data)

	q := db.Model(&Agendamento{}).
		Where("profissional_id = ?", profissionalID).
		Where("status <> ?", StatusCancelado).
		Where("data >= ? AND data < ?", inicioDia, fimDia).
		Where("hora_inicio < hora_fim").
		Where("hora_inicio < ? AND hora_fim > ?", horaFim, horaInicio)
	if ignorarID != 0 {
		q = q.Where("id <> ?", ignorarID)
	}

	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

// CriarComVerificacao executa a checagem de conflito e o insert na mesma transação.
func (r *repositoryImpl) CriarComVerificacao(db *gorm.DB, a *Agendamento) error {
	return db.Transaction(func(tx *gorm.DB) error {
		conflito, err := r.TemConflito(tx, a.ProfissionalID, a.Data, a.HoraInicio, a.HoraFim, 0)
		if err != nil {
			return err
		}
		if conflito {
			return ErrConflitoHorario
		}
		return tx.Omit(clause.Associations).Create(a).Error
	})
}

// SalvarComVerificacao grava um agendamento existente, repetindo a checagem de
// conflito (excluindo o próprio registro) quando os campos de horário mudaram.
func (r *repositoryImpl) SalvarComVerificacao(db *gorm.DB, a *Agendamento, verificarConflito bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if verificarConflito {
			conflito, err := r.TemConflito(tx, a.ProfissionalID, a.Data, a.HoraInicio, a.HoraFim, a.ID)
			if err != nil {
				return err
			}
			if conflito {
				return ErrConflitoHorario
			}
		}
		return tx.Omit(clause.Associations).Save(a).Error
	})
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Agendamento) error {
	return db.Omit(clause.Associations).Save(a).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Agendamento{}, id).Error
}
