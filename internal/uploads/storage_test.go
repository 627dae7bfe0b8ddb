package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requisicaoMultipart(t *testing.T, campo, nomeArquivo, contentType string, conteudo []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+campo+`"; filename="`+nomeArquivo+`"`)
	h.Set("Content-Type", contentType)
	parte, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = parte.Write(conteudo)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/pacientes/1/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSalvarAvatar(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())

	req := requisicaoMultipart(t, "avatar", "foto.png", "image/png", []byte("png-fake"))
	url, err := SalvarAvatar(req, "avatar")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.Equal(t, ".png", filepath.Ext(url))

	// O arquivo existe no disco com o conteúdo enviado.
	caminho := filepath.Join(Dir(), strings.TrimPrefix(url, "/uploads/"))
	conteudo, err := os.ReadFile(caminho)
	require.NoError(t, err)
	assert.Equal(t, "png-fake", string(conteudo))
}

func TestSalvarAvatarRejeitaTipo(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())

	req := requisicaoMultipart(t, "avatar", "laudo.pdf", "application/pdf", []byte("%PDF"))
	_, err := SalvarAvatar(req, "avatar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de arquivo inválido")
}

func TestSalvarAvatarSemArquivo(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())

	req := requisicaoMultipart(t, "outro-campo", "foto.png", "image/png", []byte("x"))
	_, err := SalvarAvatar(req, "avatar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arquivo não enviado")
}

func TestSalvarDocumentoAceitaQualquerTipo(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())

	req := requisicaoMultipart(t, "arquivo", "laudo.pdf", "application/pdf", []byte("%PDF"))
	url, err := SalvarDocumento(req, "arquivo")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(url))
}

func TestRemoverArquivo(t *testing.T) {
	t.Setenv("UPLOAD_FOLDER", t.TempDir())

	req := requisicaoMultipart(t, "avatar", "foto.jpg", "image/jpeg", []byte("jpg"))
	url, err := SalvarAvatar(req, "avatar")
	require.NoError(t, err)

	caminho := filepath.Join(Dir(), strings.TrimPrefix(url, "/uploads/"))
	RemoverArquivo(url)
	_, err = os.Stat(caminho)
	assert.True(t, os.IsNotExist(err))

	// URLs fora do prefixo de uploads são ignoradas.
	RemoverArquivo("")
	RemoverArquivo("/etc/passwd")
	RemoverArquivo(url) // já removido, não pode falhar
}
