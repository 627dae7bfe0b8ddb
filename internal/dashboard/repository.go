package dashboard

import (
	"time"

	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/agendamento"
	"github.com/odontosys/api-clinica/internal/financeiro"
	"github.com/odontosys/api-clinica/internal/paciente"
)

// TotalAgregado é soma + quantidade de lançamentos de um período.
type TotalAgregado struct {
	Total      float64 `json:"total"`
	Quantidade int64   `json:"quantidade"`
}

// ResumoFinanceiro agrupa os números exibidos nos cartões do painel.
type ResumoFinanceiro struct {
	ReceitasMes          TotalAgregado `json:"receitasMes"`
	DespesasMes          TotalAgregado `json:"despesasMes"`
	ReceitasDia          TotalAgregado `json:"receitasDia"`
	SaldoMes             float64       `json:"saldoMes"`
	LancamentosPendentes int64         `json:"lancamentosPendentes"`
}

// Resumo é a resposta completa do painel.
type Resumo struct {
	Financeiro           ResumoFinanceiro          `json:"financeiro"`
	ProximosAgendamentos []agendamento.Agendamento `json:"proximosAgendamentos"`
	TotalPacientes       int64                     `json:"totalPacientes"`
}

type Repository interface {
	ObterResumo(db *gorm.DB, referencia time.Time) (*Resumo, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// agregarLancamentos soma e conta lançamentos de um tipo dentro de [inicio, fim).
// COALESCE garante soma zero quando não há linhas.
func agregarLancamentos(db *gorm.DB, tipo string, inicio, fim time.Time) (TotalAgregado, error) {
	var res TotalAgregado
	err := db.Model(&financeiro.LancamentoFinanceiro{}).
		Select("COALESCE(SUM(valor), 0) AS total, COUNT(*) AS quantidade").
		Where("tipo = ?", tipo).
		Where("data >= ? AND data < ?", inicio, fim).
		Scan(&res).Error
	return res, err
}

func (r *repositoryImpl) ObterResumo(db *gorm.DB, referencia time.Time) (*Resumo, error) {
	inicioDia := time.Date(referencia.Year(), referencia.Month(), referencia.Day(), 0, 0, 0, 0, referencia.Location())
	fimDia := inicioDia.Add(24 * time.Hour)
	inicioMes := time.Date(referencia.Year(), referencia.Month(), 1, 0, 0, 0, 0, referencia.Location())
	fimMes := inicioMes.AddDate(0, 1, 0)

	receitasDia, err := agregarLancamentos(db, financeiro.TipoReceita, inicioDia, fimDia)
	if err != nil {
		return nil, err
	}
	receitasMes, err := agregarLancamentos(db, financeiro.TipoReceita, inicioMes, fimMes)
	if err != nil {
		return nil, err
	}
	despesasMes, err := agregarLancamentos(db, financeiro.TipoDespesa, inicioMes, fimMes)
	if err != nil {
		return nil, err
	}

	var pendentes int64
	if err := db.Model(&financeiro.LancamentoFinanceiro{}).
		Where("status = ?", financeiro.StatusPendente).
		Count(&pendentes).Error; err != nil {
		return nil, err
	}

	var proximos []agendamento.Agendamento
	if err := db.Model(&agendamento.Agendamento{}).
		Where("data >= ?", inicioDia).
		Where("status NOT IN ?", []string{agendamento.StatusCancelado, agendamento.StatusConcluido}).
		Preload("Paciente").
		Preload("Profissional").
		Order("data asc, hora_inicio asc").
		Limit(5).
		Find(&proximos).Error; err != nil {
		return nil, err
	}

	var totalPacientes int64
	if err := db.Model(&paciente.Paciente{}).
		Where("status = ?", paciente.StatusAtivo).
		Count(&totalPacientes).Error; err != nil {
		return nil, err
	}

	return &Resumo{
		Financeiro: ResumoFinanceiro{
			ReceitasMes:          receitasMes,
			DespesasMes:          despesasMes,
			ReceitasDia:          receitasDia,
			SaldoMes:             receitasMes.Total - despesasMes.Total,
			LancamentosPendentes: pendentes,
		},
		ProximosAgendamentos: proximos,
		TotalPacientes:       totalPacientes,
	}, nil
}
