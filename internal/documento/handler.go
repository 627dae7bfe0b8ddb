package documento

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/uploads"
	"github.com/odontosys/api-clinica/internal/utils"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /documentos/paciente/{pacienteId}
func (h *Handler) ListarPorPaciente(w http.ResponseWriter, r *http.Request) {
	pacienteID, err := strconv.Atoi(mux.Vars(r)["pacienteId"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	documentos, err := h.Repository.ListarPorPaciente(h.DB, uint(pacienteID))
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao listar documentos")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, documentos)
}

// POST /documentos (multipart: arquivo + pacienteId, nome, tipo)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	url, err := uploads.SalvarDocumento(r, "arquivo")
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	pacienteID, err := strconv.Atoi(r.FormValue("pacienteId"))
	nome := r.FormValue("nome")
	tipo := r.FormValue("tipo")
	if err != nil || pacienteID <= 0 || nome == "" || tipo == "" {
		uploads.RemoverArquivo(url)
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: pacienteId, nome e tipo são obrigatórios")
		return
	}

	var existe int64
	if err := h.DB.Table("pacientes").
		Where("id = ? AND deleted_at = 0", pacienteID).
		Count(&existe).Error; err != nil || existe == 0 {
		uploads.RemoverArquivo(url)
		utils.ResponderErro(w, http.StatusNotFound, "Paciente não encontrado")
		return
	}

	d := Documento{
		PacienteID: uint(pacienteID),
		Nome:       nome,
		Tipo:       tipo,
		URL:        url,
	}
	if err := h.Repository.Salvar(h.DB, &d); err != nil {
		uploads.RemoverArquivo(url)
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao salvar documento")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, d)
}

// DELETE /documentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Documento não encontrado")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao excluir documento")
		return
	}
	uploads.RemoverArquivo(d.URL)

	w.WriteHeader(http.StatusNoContent)
}
