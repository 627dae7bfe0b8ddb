package dashboard

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/agendamento"
	"github.com/odontosys/api-clinica/internal/financeiro"
	"github.com/odontosys/api-clinica/internal/paciente"
	"github.com/odontosys/api-clinica/internal/profissional"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&paciente.Paciente{},
		&profissional.Profissional{},
		&agendamento.Agendamento{},
		&financeiro.LancamentoFinanceiro{},
	))
	return db
}

var referencia = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func TestObterResumoBancoVazio(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	resumo, err := repo.ObterResumo(db, referencia)
	require.NoError(t, err)

	assert.Zero(t, resumo.Financeiro.ReceitasDia.Total)
	assert.Zero(t, resumo.Financeiro.ReceitasDia.Quantidade)
	assert.Zero(t, resumo.Financeiro.ReceitasMes.Total)
	assert.Zero(t, resumo.Financeiro.DespesasMes.Total)
	assert.Zero(t, resumo.Financeiro.SaldoMes)
	assert.Zero(t, resumo.Financeiro.LancamentosPendentes)
	assert.Empty(t, resumo.ProximosAgendamentos)
	assert.Zero(t, resumo.TotalPacientes)
}

func TestObterResumoAgregados(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	lancar := func(tipo string, valor float64, d time.Time, status string) {
		require.NoError(t, db.Create(&financeiro.LancamentoFinanceiro{
			Tipo: tipo, Categoria: "Geral", Descricao: "x",
			Valor: valor, Data: d, Status: status, FormaPagamento: "pix",
		}).Error)
	}

	lancar(financeiro.TipoReceita, 100, referencia, financeiro.StatusPago)
	lancar(financeiro.TipoReceita, 200, referencia.AddDate(0, 0, 5), financeiro.StatusPendente)
	lancar(financeiro.TipoDespesa, 50, referencia.AddDate(0, 0, 2), financeiro.StatusPago)
	// Fora do mês de referência: não entra em nenhum agregado mensal.
	lancar(financeiro.TipoReceita, 999, referencia.AddDate(0, 1, 0), financeiro.StatusPago)

	resumo, err := repo.ObterResumo(db, referencia)
	require.NoError(t, err)

	assert.EqualValues(t, 100, resumo.Financeiro.ReceitasDia.Total)
	assert.EqualValues(t, 1, resumo.Financeiro.ReceitasDia.Quantidade)
	assert.EqualValues(t, 300, resumo.Financeiro.ReceitasMes.Total)
	assert.EqualValues(t, 2, resumo.Financeiro.ReceitasMes.Quantidade)
	assert.EqualValues(t, 50, resumo.Financeiro.DespesasMes.Total)
	assert.EqualValues(t, 250, resumo.Financeiro.SaldoMes)
	assert.EqualValues(t, 1, resumo.Financeiro.LancamentosPendentes)
}

func TestObterResumoProximosAgendamentos(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	p := paciente.Paciente{Nome: "Maria Souza", CPF: "111", Status: paciente.StatusAtivo}
	require.NoError(t, db.Create(&p).Error)
	prof := profissional.Profissional{Nome: "Dr. Carlos Lima", Email: "c@c.com", CRO: "SP-1", CPF: "222", Especialidade: "CLINICO_GERAL"}
	require.NoError(t, db.Create(&prof).Error)

	marcar := func(d time.Time, status string) {
		require.NoError(t, db.Create(&agendamento.Agendamento{
			PacienteID: p.ID, ProfissionalID: prof.ID,
			Data: d, HoraInicio: d, HoraFim: d.Add(30 * time.Minute),
			Procedimento: "Limpeza", Status: status,
		}).Error)
	}

	marcar(referencia.Add(2*time.Hour), agendamento.StatusAgendado)
	marcar(referencia.AddDate(0, 0, 1), agendamento.StatusConfirmado)
	marcar(referencia.AddDate(0, 0, 2), agendamento.StatusCancelado)
	marcar(referencia.AddDate(0, 0, 3), agendamento.StatusConcluido)
	marcar(referencia.AddDate(0, 0, -5), agendamento.StatusAgendado)

	resumo, err := repo.ObterResumo(db, referencia)
	require.NoError(t, err)

	require.Len(t, resumo.ProximosAgendamentos, 2, "cancelados, concluídos e passados ficam de fora")
	assert.Equal(t, agendamento.StatusAgendado, resumo.ProximosAgendamentos[0].Status)
	assert.Equal(t, "Maria Souza", resumo.ProximosAgendamentos[0].Paciente.Nome)
	assert.Equal(t, "Dr. Carlos Lima", resumo.ProximosAgendamentos[0].Profissional.Nome)
}

func TestObterResumoContaSoPacientesAtivos(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, db.Create(&paciente.Paciente{Nome: "A", CPF: "1", Status: paciente.StatusAtivo}).Error)
	require.NoError(t, db.Create(&paciente.Paciente{Nome: "B", CPF: "2", Status: paciente.StatusInativo}).Error)

	resumo, err := repo.ObterResumo(db, referencia)
	require.NoError(t, err)
	assert.EqualValues(t, 1, resumo.TotalPacientes)
}
