package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// Limite de tamanho para upload de avatar (5MB).
	TamanhoMaxAvatar = 5 << 20
	// Limite de tamanho para documentos anexados (20MB).
	TamanhoMaxDocumento = 20 << 20

	prefixoURL = "/uploads/"
)

var mimesAvatar = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// Dir retorna o diretório de uploads, criando-o se necessário.
func Dir() string {
	dir := os.Getenv("UPLOAD_FOLDER")
	if dir == "" {
		dir = "uploads"
	}
	os.MkdirAll(dir, 0o755)
	return dir
}

func salvar(file multipart.File, header *multipart.FileHeader) (string, error) {
	defer file.Close()

	nome := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(header.Filename))
	destino := filepath.Join(Dir(), nome)

	out, err := os.Create(destino)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(destino)
		return "", err
	}
	return prefixoURL + nome, nil
}

// SalvarAvatar grava a imagem do campo informado e retorna a URL relativa.
// Aceita apenas JPEG/PNG de até 5MB.
func SalvarAvatar(r *http.Request, campo string) (string, error) {
	if err := r.ParseMultipartForm(TamanhoMaxAvatar); err != nil {
		return "", errors.New("arquivo excede o tamanho máximo de 5MB")
	}
	file, header, err := r.FormFile(campo)
	if err != nil {
		return "", errors.New("arquivo não enviado")
	}
	tipo := header.Header.Get("Content-Type")
	if !mimesAvatar[strings.ToLower(tipo)] {
		file.Close()
		return "", errors.New("tipo de arquivo inválido")
	}
	return salvar(file, header)
}

// SalvarDocumento grava um anexo genérico e retorna a URL relativa.
func SalvarDocumento(r *http.Request, campo string) (string, error) {
	if err := r.ParseMultipartForm(TamanhoMaxDocumento); err != nil {
		return "", errors.New("arquivo excede o tamanho máximo de 20MB")
	}
	file, header, err := r.FormFile(campo)
	if err != nil {
		return "", errors.New("arquivo não enviado")
	}
	return salvar(file, header)
}

// RemoverArquivo apaga o arquivo apontado pela URL relativa.
// Falha é apenas registrada; o chamador nunca recebe erro.
func RemoverArquivo(url string) {
	if url == "" || !strings.HasPrefix(url, prefixoURL) {
		return
	}
	caminho := filepath.Join(Dir(), strings.TrimPrefix(url, prefixoURL))
	if err := os.Remove(caminho); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("arquivo", caminho).Msg("erro ao remover arquivo de upload")
	}
}
