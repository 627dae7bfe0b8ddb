package financeiro

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/utils"
)

const limitePadrao = 10

var validate = validator.New()

type lancamentoRequest struct {
	Tipo           string  `json:"tipo" validate:"required,oneof=receita despesa"`
	Categoria      string  `json:"categoria" validate:"required"`
	Descricao      string  `json:"descricao" validate:"required"`
	Valor          float64 `json:"valor" validate:"required,gt=0"`
	Data           string  `json:"data" validate:"required"`
	Status         string  `json:"status" validate:"required,oneof=pendente pago cancelado"`
	FormaPagamento string  `json:"formaPagamento" validate:"required"`
	PacienteID     *uint   `json:"pacienteId"`
}

// parseData aceita RFC3339 ou somente a data, sempre normalizado para UTC.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /financeiro
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtros := Filtros{
		Busca:  r.URL.Query().Get("busca"),
		Tipo:   r.URL.Query().Get("tipo"),
		Status: r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("dataInicio"); v != "" {
		data, err := parseData(v)
		if err != nil {
			utils.ResponderErro(w, http.StatusBadRequest, "Data inicial inválida")
			return
		}
		filtros.DataInicio = &data
	}
	if v := r.URL.Query().Get("dataFim"); v != "" {
		data, err := parseData(v)
		if err != nil {
			utils.ResponderErro(w, http.StatusBadRequest, "Data final inválida")
			return
		}
		filtros.DataFim = &data
	}

	page, limit := utils.Paginacao(r, limitePadrao)
	lancamentos, total, err := h.Repository.Listar(h.DB, filtros, page, limit)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar lançamentos financeiros")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, utils.NovaListaPaginada(lancamentos, total, limit))
}

// GET /financeiro/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Lançamento não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, l)
}

// POST /financeiro
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req lancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	data, err := parseData(req.Data)
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data inválida")
		return
	}

	l := LancamentoFinanceiro{
		Tipo:           req.Tipo,
		Categoria:      req.Categoria,
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		Data:           data,
		Status:         req.Status,
		FormaPagamento: req.FormaPagamento,
		PacienteID:     req.PacienteID,
	}
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar lançamento financeiro")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, l)
}

// PUT /financeiro/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req lancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	data, err := parseData(req.Data)
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data inválida")
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Lançamento não encontrado")
		return
	}

	l.Tipo = req.Tipo
	l.Categoria = req.Categoria
	l.Descricao = req.Descricao
	l.Valor = req.Valor
	l.Data = data
	l.Status = req.Status
	l.FormaPagamento = req.FormaPagamento
	l.PacienteID = req.PacienteID
	l.Paciente = nil

	if err := h.Repository.Salvar(h.DB, l); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar lançamento financeiro")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, l)
}

// DELETE /financeiro/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Lançamento não encontrado")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir lançamento financeiro")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
