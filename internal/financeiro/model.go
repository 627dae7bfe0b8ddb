package financeiro

import (
	"time"

	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/paciente"
)

const (
	TipoReceita = "receita"
	TipoDespesa = "despesa"

	StatusPendente  = "pendente"
	StatusPago      = "pago"
	StatusCancelado = "cancelado"
)

// LancamentoFinanceiro é uma linha do livro-caixa da clínica.
// Despesas não têm paciente; por isso a referência é opcional.
type LancamentoFinanceiro struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Tipo           string    `gorm:"size:20;not null;index" json:"tipo"`
	Categoria      string    `gorm:"not null" json:"categoria"`
	Descricao      string    `gorm:"not null" json:"descricao"`
	Valor          float64   `gorm:"not null" json:"valor"`
	Data           time.Time `gorm:"not null;index" json:"data"`
	Status         string    `gorm:"size:20;not null;index" json:"status"`
	FormaPagamento string    `gorm:"not null" json:"formaPagamento"`

	PacienteID *uint              `gorm:"index" json:"pacienteId"`
	Paciente   *paciente.Paciente `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
}
