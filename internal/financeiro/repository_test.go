package financeiro

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/paciente"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&paciente.Paciente{}, &LancamentoFinanceiro{}))
	return db
}

func dia(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, db *gorm.DB, repo Repository) {
	t.Helper()
	lancamentos := []LancamentoFinanceiro{
		{Tipo: TipoReceita, Categoria: "Consulta", Descricao: "Limpeza Maria", Valor: 150, Data: dia(5), Status: StatusPago, FormaPagamento: "pix"},
		{Tipo: TipoReceita, Categoria: "Ortodontia", Descricao: "Manutenção aparelho", Valor: 200, Data: dia(12), Status: StatusPendente, FormaPagamento: "cartao_credito"},
		{Tipo: TipoDespesa, Categoria: "Material", Descricao: "Luvas e máscaras", Valor: 80, Data: dia(20), Status: StatusPago, FormaPagamento: "boleto"},
	}
	for i := range lancamentos {
		require.NoError(t, repo.Salvar(db, &lancamentos[i]))
	}
}

func TestListarFiltros(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()
	seed(t, db, repo)

	// Sem filtro: todos, mais recente primeiro.
	lista, total, err := repo.Listar(db, Filtros{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, lista, 3)
	assert.Equal(t, "Luvas e máscaras", lista[0].Descricao)

	// Por tipo.
	_, total, err = repo.Listar(db, Filtros{Tipo: TipoDespesa}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// Por status.
	_, total, err = repo.Listar(db, Filtros{Status: StatusPendente}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// Busca em descrição e categoria, sem diferenciar maiúsculas.
	_, total, err = repo.Listar(db, Filtros{Busca: "aparelho"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	_, total, err = repo.Listar(db, Filtros{Busca: "MATERIAL"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// Janela de datas inclusiva.
	inicio, fim := dia(10), dia(20)
	_, total, err = repo.Listar(db, Filtros{DataInicio: &inicio, DataFim: &fim}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestListarPaginacao(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()
	seed(t, db, repo)

	pagina1, total, err := repo.Listar(db, Filtros{}, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, pagina1, 2)

	pagina2, _, err := repo.Listar(db, Filtros{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, pagina2, 1)
	assert.Equal(t, "Limpeza Maria", pagina2[0].Descricao)
}

func TestSalvarNaoGravaPacientePreCarregado(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p := paciente.Paciente{Nome: "Maria Souza", CPF: "11122233344"}
	require.NoError(t, db.Create(&p).Error)

	l := LancamentoFinanceiro{
		Tipo: TipoReceita, Categoria: "Consulta", Descricao: "Limpeza",
		Valor: 150, Data: dia(5), Status: StatusPago, FormaPagamento: "pix",
		PacienteID: &p.ID,
	}
	require.NoError(t, repo.Salvar(db, &l))

	carregado, err := repo.BuscarPorID(db, l.ID)
	require.NoError(t, err)
	require.NotNil(t, carregado.Paciente)
	assert.Equal(t, "Maria Souza", carregado.Paciente.Nome)

	// Alterar a associação em memória e regravar não pode tocar o paciente.
	carregado.Paciente.Nome = "Outro Nome"
	carregado.Status = StatusPendente
	require.NoError(t, repo.Salvar(db, carregado))

	var original paciente.Paciente
	require.NoError(t, db.First(&original, p.ID).Error)
	assert.Equal(t, "Maria Souza", original.Nome)
}
