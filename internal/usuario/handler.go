package usuario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/auth"
	"github.com/odontosys/api-clinica/internal/utils"
)

// ErrAdminJaExiste sinaliza que a rota de bootstrap já foi consumida.
var ErrAdminJaExiste = errors.New("já existe um usuário cadastrado")

var validate = validator.New()

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type criarUsuarioRequest struct {
	Nome  string `json:"nome" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
	Cargo string `json:"cargo" validate:"required"`
}

type atualizarUsuarioRequest struct {
	Nome  *string `json:"nome" validate:"omitempty,min=3"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha *string `json:"senha" validate:"omitempty,min=6"`
	Cargo *string `json:"cargo"`
}

type criarAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// perfilDTO é o formato público de uma conta (nunca inclui a senha).
type perfilDTO struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
}

func paraPerfil(u Usuario) perfilDTO {
	return perfilDTO{ID: u.ID, Nome: u.Nome, Email: u.Email, Cargo: u.Cargo}
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	u, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		utils.ResponderErro(w, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}
	if !utils.VerificarSenha(u.Senha, req.Senha) {
		utils.ResponderErro(w, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}

	token, err := auth.GerarToken(u.ID)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}

	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{
		"usuario": paraPerfil(*u),
		"token":   token,
	})
}

// POST /usuarios/criar-admin, bootstrap público de uso único.
func (h *Handler) CriarAdmin(w http.ResponseWriter, r *http.Request) {
	var req criarAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao processar senha")
		return
	}

	u := Usuario{
		Nome:  "Administrador",
		Email: req.Email,
		Senha: hash,
		Cargo: CargoAdmin,
	}
	if err := h.Repository.CriarPrimeiroAdmin(h.DB, &u); err != nil {
		if errors.Is(err, ErrAdminJaExiste) {
			utils.ResponderErro(w, http.StatusBadRequest, "Já existe um usuário administrador")
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar administrador")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, paraPerfil(u))
}

// GET /usuarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar usuários")
		return
	}
	perfis := make([]perfilDTO, 0, len(usuarios))
	for _, u := range usuarios {
		perfis = append(perfis, paraPerfil(u))
	}
	utils.ResponderJSON(w, http.StatusOK, perfis)
}

// GET /usuarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Usuário não encontrado")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, paraPerfil(*u))
}

// POST /usuarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	existe, err := h.Repository.ExisteEmail(h.DB, req.Email, 0)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}
	if existe {
		utils.ResponderErro(w, http.StatusConflict, "Email já cadastrado")
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao processar senha")
		return
	}

	u := Usuario{Nome: req.Nome, Email: req.Email, Senha: hash, Cargo: req.Cargo}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, paraPerfil(u))
}

// PUT /usuarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req atualizarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Usuário não encontrado")
		return
	}

	if req.Email != nil {
		existe, err := h.Repository.ExisteEmail(h.DB, *req.Email, u.ID)
		if err != nil {
			utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
			return
		}
		if existe {
			utils.ResponderErro(w, http.StatusConflict, "Email já cadastrado")
			return
		}
		u.Email = *req.Email
	}
	if req.Nome != nil {
		u.Nome = *req.Nome
	}
	if req.Cargo != nil {
		u.Cargo = *req.Cargo
	}
	if req.Senha != nil {
		hash, err := utils.HashSenha(*req.Senha)
		if err != nil {
			utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao processar senha")
			return
		}
		u.Senha = hash
	}

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, paraPerfil(*u))
}

// DELETE /usuarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Usuário não encontrado")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir usuário")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
