package odontograma

import "time"

// Faces dentárias reconhecidas: vestibular, lingual/palatina, mesial, distal e oclusal.
var FacesValidas = map[string]bool{
	"V": true,
	"L": true,
	"M": true,
	"D": true,
	"O": true,
}

// DenteValido aceita a numeração dos 32 dentes permanentes (quadrantes 1 a 4, posições 1 a 8).
func DenteValido(dente int) bool {
	quadrante := dente / 10
	posicao := dente % 10
	return quadrante >= 1 && quadrante <= 4 && posicao >= 1 && posicao <= 8
}

// Odontograma é o mapa de procedimentos dentários de um prontuário (1:1).
type Odontograma struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProntuarioID uint `gorm:"uniqueIndex;not null" json:"prontuarioId"`

	Procedimentos []ProcedimentoOdontograma `gorm:"foreignKey:OdontogramaID" json:"procedimentos"`
}

// ProcedimentoOdontograma marca um procedimento em um dente/face.
// Entradas históricas por (dente, face) se acumulam; não há deduplicação.
type ProcedimentoOdontograma struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	OdontogramaID uint   `gorm:"not null;index" json:"odontogramaId"`
	Dente         int    `gorm:"not null" json:"dente"`
	Face          string `gorm:"size:1;not null" json:"face"`
	Procedimento  string `gorm:"not null" json:"procedimento"`
	Observacao    string `json:"observacao"`
}
