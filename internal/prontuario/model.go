package prontuario

import (
	"time"

	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/paciente"
)

// Prontuario é o registro clínico datado de um paciente.
// Cada prontuário pode ter no máximo um odontograma associado.
type Prontuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	PacienteID uint              `gorm:"not null;index" json:"pacienteId"`
	Paciente   paciente.Paciente `gorm:"foreignKey:PacienteID" json:"paciente"`

	Data         time.Time `gorm:"not null" json:"data"`
	Descricao    string    `gorm:"not null" json:"descricao"`
	Procedimento string    `gorm:"not null" json:"procedimento"`
	Observacoes  string    `json:"observacoes"`
}
