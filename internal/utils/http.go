package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
)

// ListaPaginada é o envelope padrão das rotas de listagem.
type ListaPaginada struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Pages int         `json:"pages"`
}

// NovaListaPaginada calcula o total de páginas a partir do limite usado na consulta.
func NovaListaPaginada(items interface{}, total int64, limit int) ListaPaginada {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return ListaPaginada{Items: items, Total: total, Pages: pages}
}

// ResponderJSON escreve o corpo JSON com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// ResponderErro escreve o corpo de erro padrão {"message": ...}.
func ResponderErro(w http.ResponseWriter, status int, mensagem string) {
	ResponderJSON(w, status, map[string]string{"message": mensagem})
}

// Paginacao extrai page/limit da query string com defaults por rota.
func Paginacao(r *http.Request, limitePadrao int) (page, limit int) {
	page = 1
	limit = limitePadrao
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
