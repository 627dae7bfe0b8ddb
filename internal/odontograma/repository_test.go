package odontograma

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/paciente"
	"github.com/odontosys/api-clinica/internal/prontuario"
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
		&prontuario.Prontuario{},
		&Odontograma{},
		&ProcedimentoOdontograma{},
	))
	return db
}

func criarProntuario(t *testing.T, db *gorm.DB) *prontuario.Prontuario {
	t.Helper()
	p := paciente.Paciente{Nome: "Maria Souza", CPF: "11122233344"}
	require.NoError(t, db.Create(&p).Error)
	pr := prontuario.Prontuario{
		PacienteID:   p.ID,
		Data:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Descricao:    "Consulta de rotina",
		Procedimento: "Avaliação",
	}
	require.NoError(t, db.Create(&pr).Error)
	return &pr
}

func TestAdicionarProcedimentoCriaOdontogramaSobDemanda(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()
	pr := criarProntuario(t, db)

	// O prontuário nasce sem odontograma.
	_, err := repo.BuscarPorProntuario(db, pr.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.AdicionarProcedimento(db, pr.ID, &ProcedimentoOdontograma{
		Dente:        11,
		Face:         "V",
		Procedimento: "Restauração",
	})
	require.NoError(t, err)

	o, err := repo.BuscarPorProntuario(db, pr.ID)
	require.NoError(t, err)
	require.Len(t, o.Procedimentos, 1)
	assert.Equal(t, 11, o.Procedimentos[0].Dente)

	// Segunda gravação reaproveita o mesmo odontograma.
	err = repo.AdicionarProcedimento(db, pr.ID, &ProcedimentoOdontograma{
		Dente:        11,
		Face:         "O",
		Procedimento: "Aplicação de flúor",
	})
	require.NoError(t, err)

	var totalOdontogramas int64
	require.NoError(t, db.Model(&Odontograma{}).Count(&totalOdontogramas).Error)
	assert.EqualValues(t, 1, totalOdontogramas)

	o, err = repo.BuscarPorProntuario(db, pr.ID)
	require.NoError(t, err)
	assert.Len(t, o.Procedimentos, 2)
}

func TestDeletarProntuarioCascateiaOdontograma(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()
	prontuarios := prontuario.NewRepository()
	pr := criarProntuario(t, db)

	require.NoError(t, repo.AdicionarProcedimento(db, pr.ID, &ProcedimentoOdontograma{
		Dente:        36,
		Face:         "O",
		Procedimento: "Canal",
	}))

	require.NoError(t, prontuarios.DeletarComOdontograma(db, pr.ID))

	_, err := prontuarios.BuscarPorID(db, pr.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var odontogramas, procedimentos int64
	require.NoError(t, db.Model(&Odontograma{}).Count(&odontogramas).Error)
	require.NoError(t, db.Model(&ProcedimentoOdontograma{}).Count(&procedimentos).Error)
	assert.EqualValues(t, 0, odontogramas)
	assert.EqualValues(t, 0, procedimentos)
}

func TestDenteValido(t *testing.T) {
	validos := []int{11, 18, 21, 28, 31, 38, 41, 48}
	for _, d := range validos {
		assert.True(t, DenteValido(d), "dente %d", d)
	}
	invalidos := []int{0, 10, 19, 29, 50, 55, 9, -11}
	for _, d := range invalidos {
		assert.False(t, DenteValido(d), "dente %d", d)
	}
}

func TestFacesValidas(t *testing.T) {
	for _, f := range []string{"V", "L", "M", "D", "O"} {
		assert.True(t, FacesValidas[f], f)
	}
	assert.False(t, FacesValidas["X"])
	assert.False(t, FacesValidas["v"])
}
