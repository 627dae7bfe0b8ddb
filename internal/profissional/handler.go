package profissional

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

const limitePadrao = 10

var validate = validator.New()

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /profissionais
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtros := Filtros{
		Busca:         r.URL.Query().Get("busca"),
		Especialidade: r.URL.Query().Get("especialidade"),
	}
	page, limit := utils.Paginacao(r, limitePadrao)

	profissionais, total, err := h.Repository.Listar(h.DB, filtros, page, limit)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar profissionais")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, utils.NovaListaPaginada(profissionais, total, limit))
}

// GET /profissionais/lista
func (h *Handler) ListarResumo(w http.ResponseWriter, r *http.Request) {
	itens, err := h.Repository.ListarResumo(h.DB)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar profissionais")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, itens)
}

// GET /profissionais/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Profissional não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// POST /profissionais
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarProfissionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if !especialidadeValida(req.Especialidade) {
		utils.ResponderErro(w, http.StatusBadRequest, "Especialidade inválida")
		return
	}

	p, err := req.paraModelo()
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data de nascimento inválida")
		return
	}

	existe, err := h.Repository.ExisteDuplicado(h.DB, p.CRO, p.CPF, p.Email, 0)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar profissional")
		return
	}
	if existe {
		utils.ResponderErro(w, http.StatusConflict, "Já existe um profissional com este CRO, CPF ou e-mail")
		return
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar profissional")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, p)
}

// PUT /profissionais/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req atualizarProfissionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if req.Especialidade != nil && !especialidadeValida(*req.Especialidade) {
		utils.ResponderErro(w, http.StatusBadRequest, "Especialidade inválida")
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Profissional não encontrado")
		return
	}

	if req.CRO != nil || req.CPF != nil || req.Email != nil {
		var cro, cpf, email string
		if req.CRO != nil {
			cro = *req.CRO
		}
		if req.CPF != nil {
			cpf = *req.CPF
		}
		if req.Email != nil {
			email = *req.Email
		}
		existe, err := h.Repository.ExisteDuplicado(h.DB, cro, cpf, email, p.ID)
		if err != nil {
			utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar profissional")
			return
		}
		if existe {
			utils.ResponderErro(w, http.StatusConflict, "Já existe um profissional com este CRO, CPF ou e-mail")
			return
		}
	}

	if err := aplicarAtualizacao(p, req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Data de nascimento inválida")
		return
	}
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar profissional")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// PATCH /profissionais/{id}/avatar
func (h *Handler) AtualizarAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Profissional não encontrado")
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

// DELETE /profissionais/{id}/avatar
func (h *Handler) RemoverAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Profissional não encontrado")
		return
	}

	anterior := p.AvatarURL
	p.AvatarURL = ""
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao remover avatar")
		return
	}
	uploads.RemoverArquivo(anterior)

	w.WriteHeader(http.StatusNoContent)
}

// PATCH /profissionais/{id}/status
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
		utils.ResponderErro(w, http.StatusNotFound, "Profissional não encontrado")
		return
	}
	p.Status = req.Status
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar status")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, p)
}

// DELETE /profissionais/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderErro(w, http.StatusNotFound, "Profissional não encontrado")
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir profissional")
		return
	}

	dependentes, err := h.Repository.ContarDependentes(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir profissional")
		return
	}
	if dependentes > 0 {
		utils.ResponderErro(w, http.StatusConflict, "Não é possível excluir o profissional pois existem agendamentos vinculados")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir profissional")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
