package usuario

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	ExisteEmail(db *gorm.DB, email string, ignorarID uint) (bool, error)
	Salvar(db *gorm.DB, u *Usuario) error
	CriarPrimeiroAdmin(db *gorm.DB, u *Usuario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome asc").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) ExisteEmail(db *gorm.DB, email string, ignorarID uint) (bool, error) {
	q := db.Model(&Usuario{}).Where("email = ?", email)
	if ignorarID != 0 {
		q = q.Where("id <> ?", ignorarID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

// CriarPrimeiroAdmin só insere se nenhuma conta existir; contagem e insert
// acontecem na mesma transação para a rota de bootstrap se autodesativar.
func (r *repositoryImpl) CriarPrimeiroAdmin(db *gorm.DB, u *Usuario) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&Usuario{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAdminJaExiste
		}
		return tx.Create(u).Error
	})
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
