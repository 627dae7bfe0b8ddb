package agendamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/utils"
)

const (
	limitePadrao   = 10
	limiteProximos = 10
)

var validate = validator.New()

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /agendamentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var filtros Filtros
	if v := r.URL.Query().Get("data"); v != "" {
		data, err := parseData(v)
		if err != nil {
			utils.ResponderErro(w, http.StatusBadRequest, "Data inválida")
			return
		}
		filtros.Data = &data
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("profissionalId")); err == nil {
		filtros.ProfissionalID = uint(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("pacienteId")); err == nil {
		filtros.PacienteID = uint(v)
	}
	filtros.Status = r.URL.Query().Get("status")

	page, limit := utils.Paginacao(r, limitePadrao)
	agendamentos, total, err := h.Repository.Listar(h.DB, filtros, page, limit)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar agendamentos")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, utils.NovaListaPaginada(agendamentos, total, limit))
}

// GET /agendamentos/hoje
func (h *Handler) ListarHoje(w http.ResponseWriter, r *http.Request) {
	agendamentos, err := h.Repository.ListarDoDia(h.DB, time.Now())
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar agendamentos do dia")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, agendamentos)
}

// GET /agendamentos/proximos
func (h *Handler) ListarProximos(w http.ResponseWriter, r *http.Request) {
	agendamentos, err := h.Repository.ListarProximos(h.DB, time.Now(), limiteProximos)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar próximos agendamentos")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, agendamentos)
}

// GET /agendamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Agendamento não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, a)
}

// POST /agendamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarAgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if req.Status != "" && !StatusValido(req.Status) {
		utils.ResponderErro(w, http.StatusBadRequest, "Status inválido")
		return
	}

	a, err := req.paraModelo()
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data ou horário inválido")
		return
	}
	if !a.HoraInicio.Before(a.HoraFim) {
		utils.ResponderErro(w, http.StatusBadRequest, "Hora de início deve ser anterior à hora de fim")
		return
	}

	if err := h.Repository.CriarComVerificacao(h.DB, &a); err != nil {
		if errors.Is(err, ErrConflitoHorario) {
			utils.ResponderErro(w, http.StatusConflict, "Horário não disponível")
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar agendamento")
		return
	}

	criado, err := h.Repository.BuscarPorID(h.DB, a.ID)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar agendamento")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, criado)
}

// PUT /agendamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req atualizarAgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.Status != nil && !StatusValido(*req.Status) {
		utils.ResponderErro(w, http.StatusBadRequest, "Status inválido")
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Agendamento não encontrado")
		return
	}

	verificarConflito, err := aplicarAtualizacao(a, req)
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data ou horário inválido")
		return
	}
	if !a.HoraInicio.Before(a.HoraFim) {
		utils.ResponderErro(w, http.StatusBadRequest, "Hora de início deve ser anterior à hora de fim")
		return
	}

	if err := h.Repository.SalvarComVerificacao(h.DB, a, verificarConflito); err != nil {
		if errors.Is(err, ErrConflitoHorario) {
			utils.ResponderErro(w, http.StatusConflict, "Horário não disponível")
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar agendamento")
		return
	}

	atualizado, err := h.Repository.BuscarPorID(h.DB, a.ID)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar agendamento")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, atualizado)
}

// PATCH /agendamentos/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if !StatusValido(req.Status) {
		utils.ResponderErro(w, http.StatusBadRequest, "Status inválido")
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Agendamento não encontrado")
		return
	}
	a.Status = req.Status
	if err := h.Repository.Salvar(h.DB, a); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar status")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, a)
}

// DELETE /agendamentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Agendamento não encontrado")
		return
	}
	if a.Status == StatusConcluido {
		utils.ResponderErro(w, http.StatusConflict, "Não é possível excluir um agendamento concluído")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir agendamento")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
