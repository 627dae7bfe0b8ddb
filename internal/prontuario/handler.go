package prontuario

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

var validate = validator.New()

type criarProntuarioRequest struct {
	PacienteID   uint   `json:"pacienteId" validate:"required"`
	Descricao    string `json:"descricao" validate:"required"`
	Procedimento string `json:"procedimento" validate:"required"`
	Observacoes  string `json:"observacoes"`
}

type atualizarProntuarioRequest struct {
	Descricao    *string `json:"descricao"`
	Procedimento *string `json:"procedimento"`
	Observacoes  *string `json:"observacoes"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /prontuarios/paciente/{pacienteId}
func (h *Handler) ListarPorPaciente(w http.ResponseWriter, r *http.Request) {
	pacienteID, err := strconv.Atoi(mux.Vars(r)["pacienteId"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	prontuarios, err := h.Repository.ListarPorPaciente(h.DB, uint(pacienteID))
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar prontuários")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, prontuarios)
}

// GET /prontuarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Prontuário não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// POST /prontuarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarProntuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	var existe int64
	if err := h.DB.Table("pacientes").
		Where("id = ? AND deleted_at = 0", req.PacienteID).
		Count(&existe).Error; err != nil || existe == 0 {
		utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
		return
	}

	p := Prontuario{
		PacienteID:   req.PacienteID,
		Data:         time.Now(),
		Descricao:    req.Descricao,
		Procedimento: req.Procedimento,
		Observacoes:  req.Observacoes,
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar prontuário")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// PUT /prontuarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req atualizarProntuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Prontuário não encontrado")
		return
	}

	if req.Descricao != nil {
		p.Descricao = *req.Descricao
	}
	if req.Procedimento != nil {
		p.Procedimento = *req.Procedimento
	}
	if req.Observacoes != nil {
		p.Observacoes = *req.Observacoes
	}

	if err := h.Repository.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar prontuário")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// DELETE /prontuarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Prontuário não encontrado")
		return
	}

	if err := h.Repository.DeletarComOdontograma(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir prontuário")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
