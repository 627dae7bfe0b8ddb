package paciente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/uploads"
	"github.com/odontosys/api-clinica/internal/utils"
)

// A listagem de pacientes alimenta selects no app, por isso o limite alto.
const limitePadrao = 1000

var validate = validator.New()

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /pacientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtros := Filtros{
		Busca:  r.URL.Query().Get("busca"),
		Status: r.URL.Query().Get("status"),
	}
	page, limit := utils.Paginacao(r, limitePadrao)

	pacientes, total, err := h.Repository.Listar(h.DB, filtros, page, limit)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar pacientes")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, utils.NovaListaPaginada(pacientes, total, limit))
}

// GET /pacientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// POST /pacientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarPacienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	p, err := req.paraModelo()
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data de nascimento inválida")
		return
	}

	existe, err := h.Repository.ExisteCPF(h.DB, p.CPF, 0)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar paciente")
		return
	}
	if existe {
		utils.ResponderErro(w, http.StatusConflict, "CPF já cadastrado")
		return
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar paciente")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// PUT /pacientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req atualizarPacienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
		return
	}

	// Unicidade só é reavaliada quando o CPF vem no patch.
	if req.CPF != nil {
		existe, err := h.Repository.ExisteCPF(h.DB, *req.CPF, p.ID)
		if err != nil {
			utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar paciente")
			return
		}
		if existe {
			utils.ResponderErro(w, http.StatusConflict, "CPF já cadastrado")
			return
		}
	}

	if err := aplicarAtualizacao(p, req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data de nascimento inválida")
		return
	}
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar paciente")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// PATCH /pacientes/{id}/avatar
func (h *Handler) AtualizarAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
		return
	}

	url, err := uploads.SalvarAvatar(r, "avatar")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	anterior := p.AvatarURL
	p.AvatarURL = url
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		uploads.RemoverArquivo(url)
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar avatar")
		return
	}
	uploads.RemoverArquivo(anterior)

	utils.ResponderJSON(w, http.StatusOK, p)
}

// PATCH /pacientes/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=ativo inativo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Status inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
		return
	}
	p.Status = req.Status
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar status")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// DELETE /pacientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir paciente")
		return
	}

	dependentes, err := h.Repository.ContarDependentes(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir paciente")
		return
	}
	if dependentes > 0 {
		utils.ResponderErro(w, http.StatusConflict, "Não é possível excluir o paciente pois existem registros vinculados")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir paciente")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
