package profissional

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type agendamentoStub struct {
	ID             uint `gorm:"primaryKey"`
	ProfissionalID uint
	DeletedAt      gorm.DeletedAt
}

func (agendamentoStub) TableName() string { return "agendamentos" }

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Profissional{}, &agendamentoStub{}))
	return db
}

func novoProfissional(nome, email, cro, cpf string) *Profissional {
	return &Profissional{
		Nome:          nome,
		Email:         email,
		CRO:           cro,
		CPF:           cpf,
		Especialidade: "CLINICO_GERAL",
		Status:        StatusAtivo,
	}
}

func TestExisteDuplicado(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p := novoProfissional("Dr. Carlos Lima", "carlos@clinica.com", "SP-12345", "55566677788")
	require.NoError(t, repo.Salvar(db, p))

	casos := []struct {
		nome            string
		cro, cpf, email string
		existe          bool
	}{
		{"cro repetido", "SP-12345", "000", "novo@clinica.com", true},
		{"cpf repetido", "RJ-111", "55566677788", "novo@clinica.com", true},
		{"email repetido", "RJ-111", "000", "carlos@clinica.com", true},
		{"tudo diferente", "RJ-111", "000", "novo@clinica.com", false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			existe, err := repo.ExisteDuplicado(db, c.cro, c.cpf, c.email, 0)
			require.NoError(t, err)
			assert.Equal(t, c.existe, existe)
		})
	}

	// O próprio registro é ignorado em updates.
	existe, err := repo.ExisteDuplicado(db, p.CRO, p.CPF, p.Email, p.ID)
	require.NoError(t, err)
	assert.False(t, existe)

	// Campos vazios não entram na comparação.
	existe, err = repo.ExisteDuplicado(db, "", "", "", 0)
	require.NoError(t, err)
	assert.False(t, existe)
}

func TestRecadastrarAposExclusao(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p := novoProfissional("Dr. Carlos Lima", "carlos@clinica.com", "SP-12345", "55566677788")
	require.NoError(t, repo.Salvar(db, p))
	require.NoError(t, repo.Deletar(db, p.ID))

	// A exclusão lógica libera CRO, CPF e e-mail para um novo cadastro.
	existe, err := repo.ExisteDuplicado(db, "SP-12345", "55566677788", "carlos@clinica.com", 0)
	require.NoError(t, err)
	assert.False(t, existe)

	novo := novoProfissional("Dr. Carlos Lima", "carlos@clinica.com", "SP-12345", "55566677788")
	require.NoError(t, repo.Salvar(db, novo))
	assert.NotEqual(t, p.ID, novo.ID)
}

func TestListarResumo(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.Salvar(db, novoProfissional("Zilda Prado", "zilda@clinica.com", "SP-3", "3")))
	require.NoError(t, repo.Salvar(db, novoProfissional("Ana Reis", "ana@clinica.com", "SP-1", "1")))

	itens, err := repo.ListarResumo(db)
	require.NoError(t, err)
	require.Len(t, itens, 2)
	assert.Equal(t, "Ana Reis", itens[0].Nome)
	assert.Equal(t, "Zilda Prado", itens[1].Nome)
	assert.Equal(t, StatusAtivo, itens[0].Status)
}

func TestListarFiltros(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.Salvar(db, novoProfissional("Dr. Carlos Lima", "carlos@clinica.com", "SP-12345", "111")))
	orto := novoProfissional("Dra. Ana Reis", "ana@clinica.com", "SP-99999", "222")
	orto.Especialidade = "ORTODONTISTA"
	require.NoError(t, repo.Salvar(db, orto))

	_, total, err := repo.Listar(db, Filtros{Busca: "CARLOS"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	lista, total, err := repo.Listar(db, Filtros{Especialidade: "ORTODONTISTA"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, lista, 1)
	assert.Equal(t, "Dra. Ana Reis", lista[0].Nome)
}

func TestContarDependentes(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p := novoProfissional("Dr. Carlos Lima", "carlos@clinica.com", "SP-12345", "111")
	require.NoError(t, repo.Salvar(db, p))

	n, err := repo.ContarDependentes(db, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	require.NoError(t, db.Create(&agendamentoStub{ProfissionalID: p.ID}).Error)

	n, err = repo.ContarDependentes(db, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
