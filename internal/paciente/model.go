package paciente

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// Paciente representa um paciente da clínica.
// O CPF é único entre os cadastros vivos; a exclusão lógica libera o
// número para um novo cadastro, por isso o índice é composto com deleted_at.
type Paciente struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	DeletedAt soft_delete.DeletedAt `gorm:"uniqueIndex:udx_pacientes_cpf" json:"-"`

	Nome           string    `gorm:"not null" json:"nome"`
	CPF            string    `gorm:"not null;uniqueIndex:udx_pacientes_cpf" json:"cpf"`
	DataNascimento time.Time `json:"dataNascimento"`
	Genero         string    `json:"genero"`

	Email           string `json:"email"`
	TelefoneCelular string `json:"telefoneCelular"`
	TelefoneFixo    string `json:"telefoneFixo"`

	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`

	ContatoEmergenciaNome       string `json:"contatoEmergenciaNome"`
	ContatoEmergenciaTelefone   string `json:"contatoEmergenciaTelefone"`
	ContatoEmergenciaParentesco string `json:"contatoEmergenciaParentesco"`

	HistoricoMedico string `json:"historicoMedico"`

	Status    string `gorm:"size:20;not null;default:'ativo';index" json:"status"`
	AvatarURL string `json:"avatarUrl"`
}
