package profissional

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// Especialidades reconhecidas pelo cadastro.
var Especialidades = []string{
	"CLINICO_GERAL",
	"ORTODONTISTA",
	"ENDODONTISTA",
	"PERIODONTISTA",
	"IMPLANTODONTISTA",
	"ODONTOPEDIATRA",
	"CIRURGIAO",
	"PROTESISTA",
	"DENTISTICA",
	"ESTETICA",
}

// Profissional representa um dentista da clínica.
// Email, CRO e CPF são únicos entre os cadastros vivos; os índices são
// compostos com deleted_at para a exclusão lógica liberar os valores.
type Profissional struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	DeletedAt soft_delete.DeletedAt `gorm:"uniqueIndex:udx_profissionais_email;uniqueIndex:udx_profissionais_cro;uniqueIndex:udx_profissionais_cpf" json:"-"`

	Nome     string `gorm:"not null" json:"nome"`
	Email    string `gorm:"not null;uniqueIndex:udx_profissionais_email" json:"email"`
	Telefone string `json:"telefone"`

	CRO            string    `gorm:"not null;uniqueIndex:udx_profissionais_cro" json:"cro"`
	Especialidade  string    `gorm:"size:50;not null" json:"especialidade"`
	DataNascimento time.Time `json:"dataNascimento"`
	CPF            string    `gorm:"not null;uniqueIndex:udx_profissionais_cpf" json:"cpf"`
	RG             string    `json:"rg"`

	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`

	Status    string `gorm:"size:20;not null;default:'ativo';index" json:"status"`
	AvatarURL string `json:"avatarUrl"`
}
