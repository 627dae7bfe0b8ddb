package usuario

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

const CargoAdmin = "admin"

// Usuario é uma conta de acesso ao sistema. O e-mail é único entre as
// contas vivas; o índice composto com deleted_at permite recriar uma
// conta excluída com o mesmo endereço.
type Usuario struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	DeletedAt soft_delete.DeletedAt `gorm:"uniqueIndex:udx_usuarios_email" json:"-"`

	Nome  string `gorm:"not null" json:"nome"`
	Email string `gorm:"not null;uniqueIndex:udx_usuarios_email" json:"email"`
	Senha string `gorm:"not null" json:"-"`
	Cargo string `gorm:"size:50;not null" json:"cargo"`
}
