package documento

import (
	"time"

	"github.com/odontosys/api-clinica/internal/paciente"
)

// Documento é um arquivo anexado ao cadastro de um paciente.
type Documento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PacienteID uint              `gorm:"not null;index" json:"pacienteId"`
	Paciente   paciente.Paciente `gorm:"foreignKey:PacienteID" json:"-"`

	Nome string `gorm:"not null" json:"nome"`
	Tipo string `gorm:"not null" json:"tipo"`
	URL  string `gorm:"not null" json:"url"`
}
