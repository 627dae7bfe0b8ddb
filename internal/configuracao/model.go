package configuracao

import (
	"time"

	"gorm.io/datatypes"
)

// IDUnico é a chave fixa da linha única de configuração.
const IDUnico = 1

// Configuracao é o singleton de configuração da clínica.
// Os três blocos são documentos JSON, espelhando o formato consumido pelo app.
type Configuracao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Clinica      datatypes.JSON `json:"clinica"`
	Notificacoes datatypes.JSON `json:"notificacoes"`
	Financeiro   datatypes.JSON `json:"financeiro"`
}
