package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.True(t, VerificarSenha(hash, "senha123"))
	assert.False(t, VerificarSenha(hash, "senha124"))
	assert.False(t, VerificarSenha("nao-e-um-hash", "senha123"))
}

func TestNovaListaPaginada(t *testing.T) {
	casos := []struct {
		nome  string
		total int64
		limit int
		pages int
	}{
		{"divisao exata", 20, 10, 2},
		{"pagina parcial no fim", 21, 10, 3},
		{"menos que uma pagina", 3, 10, 1},
		{"vazio", 0, 10, 0},
		{"limite zero nao divide", 5, 0, 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			lista := NovaListaPaginada([]int{}, c.total, c.limit)
			assert.Equal(t, c.pages, lista.Pages)
			assert.Equal(t, c.total, lista.Total)
		})
	}
}

func TestPaginacao(t *testing.T) {
	req := httptest.NewRequest("GET", "/pacientes?page=3&limit=25", nil)
	page, limit := Paginacao(req, 10)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	req = httptest.NewRequest("GET", "/pacientes", nil)
	page, limit = Paginacao(req, 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	// Valores inválidos caem nos defaults.
	req = httptest.NewRequest("GET", "/pacientes?page=0&limit=-5", nil)
	page, limit = Paginacao(req, 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestResponderErro(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponderErro(rec, 409, "Horário não disponível")

	assert.Equal(t, 409, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Horário não disponível"}`, rec.Body.String())
}
