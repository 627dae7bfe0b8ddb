package documento

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
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
	require.NoError(t, db.AutoMigrate(&paciente.Paciente{}, &Documento{}))
	return db
}

func requisicaoUpload(t *testing.T, campos map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	parte, err := mw.CreateFormFile("arquivo", "laudo.pdf")
	require.NoError(t, err)
	_, err = parte.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	for k, v := range campos {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/documentos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCriarDocumento(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())
	db := abrirBanco(t)
	h := NewHandler(db)

	p := paciente.Paciente{Nome: "Maria Souza", CPF: "111"}
	require.NoError(t, db.Create(&p).Error)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoUpload(t, map[string]string{
		"pacienteId": fmt.Sprint(p.ID),
		"nome":       "Radiografia panorâmica",
		"tipo":       "exame",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	documentos, err := NewRepository().ListarPorPaciente(db, p.ID)
	require.NoError(t, err)
	require.Len(t, documentos, 1)
	assert.Equal(t, "Radiografia panorâmica", documentos[0].Nome)
	assert.True(t, strings.HasPrefix(documentos[0].URL, "/uploads/"))
}

func TestCriarDocumentoPacienteInexistente(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())
	db := abrirBanco(t)
	h := NewHandler(db)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoUpload(t, map[string]string{
		"pacienteId": "99",
		"nome":       "Laudo",
		"tipo":       "exame",
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// O arquivo órfão é descartado.
	entradas, err := os.ReadDir(os.Getenv("UPLOAD_FOLDER"))
	require.NoError(t, err)
	assert.Empty(t, entradas)
}

func TestDeletarDocumentoRemoveArquivo(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_FOLDER", dir)
	db := abrirBanco(t)
	h := NewHandler(db)

	p := paciente.Paciente{Nome: "Maria Souza", CPF: "111"}
	require.NoError(t, db.Create(&p).Error)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicaoUpload(t, map[string]string{
		"pacienteId": fmt.Sprint(p.ID),
		"nome":       "Laudo",
		"tipo":       "exame",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	documentos, err := NewRepository().ListarPorPaciente(db, p.ID)
	require.NoError(t, err)
	require.Len(t, documentos, 1)
	caminho := filepath.Join(dir, strings.TrimPrefix(documentos[0].URL, "/uploads/"))
	_, err = os.Stat(caminho)
	require.NoError(t, err)

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodDelete, "/documentos/1", nil),
		map[string]string{"id": fmt.Sprint(documentos[0].ID)},
	)
	rec = httptest.NewRecorder()
	h.Deletar(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = os.Stat(caminho)
	assert.True(t, os.IsNotExist(err))
	_, err = NewRepository().BuscarPorID(db, documentos[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
