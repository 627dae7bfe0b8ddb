package agendamento

import (
	"time"

	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/paciente"
	"github.com/odontosys/api-clinica/internal/profissional"
)

const (
	StatusAgendado    = "agendado"
	StatusConfirmado  = "confirmado"
	StatusEmAndamento = "em_andamento"
	StatusConcluido   = "concluido"
	StatusCancelado   = "cancelado"
)

// StatusValido reconhece os estados aceitos pelo ciclo de vida do agendamento.
func StatusValido(s string) bool {
	switch s {
	case StatusAgendado, StatusConfirmado, StatusEmAndamento, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// Agendamento representa uma consulta marcada entre paciente e profissional.
type Agendamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	PacienteID uint              `gorm:"not null;index" json:"pacienteId"`
	Paciente   paciente.Paciente `gorm:"foreignKey:PacienteID" json:"paciente"`

	ProfissionalID uint                      `gorm:"not null;index" json:"profissionalId"`
	Profissional   profissional.Profissional `gorm:"foreignKey:ProfissionalID" json:"profissional"`

	Data       time.Time `gorm:"not null;index" json:"data"`
	HoraInicio time.Time `gorm:"not null" json:"horaInicio"`
	HoraFim    time.Time `gorm:"not null" json:"horaFim"`

	Procedimento string `gorm:"not null" json:"procedimento"`
	Observacoes  string `json:"observacoes"`

	Status string `gorm:"size:20;not null;default:'agendado';index" json:"status"`
}
