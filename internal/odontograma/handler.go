package odontograma

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/prontuario"
	"github.com/odontosys/api-clinica/internal/utils"
)

var validate = validator.New()

type adicionarProcedimentoRequest struct {
	Dente        int    `json:"dente" validate:"required"`
	Face         string `json:"face" validate:"required"`
	Procedimento string `json:"procedimento" validate:"required"`
	Observacao   string `json:"observacao"`
}

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Prontuarios prontuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Prontuarios: prontuario.NewRepository(),
	}
}

func (h *Handler) prontuarioDoPaciente(r *http.Request) (uint, error) {
	vars := mux.Vars(r)
	pacienteID, err := strconv.Atoi(vars["pacienteId"])
	if err != nil {
		return 0, err
	}
	prontuarioID, err := strconv.Atoi(vars["prontuarioId"])
	if err != nil {
		return 0, err
	}
	p, err := h.Prontuarios.BuscarDoPaciente(h.DB, uint(prontuarioID), uint(pacienteID))
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// GET /pacientes/{pacienteId}/prontuario/{prontuarioId}/odontograma
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	prontuarioID, err := h.prontuarioDoPaciente(r)
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Prontuário não encontrado")
		return
	}

	o, err := h.Repository.BuscarPorProntuario(h.DB, prontuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Sem odontograma ainda: lista vazia, não erro.
			utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{
				"procedimentos": []ProcedimentoOdontograma{},
			})
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar odontograma")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, o)
}

// POST /pacientes/{pacienteId}/prontuario/{prontuarioId}/odontograma
func (h *Handler) AdicionarProcedimento(w http.ResponseWriter, r *http.Request) {
	prontuarioID, err := h.prontuarioDoPaciente(r)
	if err != nil {
		utils.ResponderErro(w, http.StatusNotFound, "Prontuário não encontrado")
		return
	}

	var req adicionarProcedimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}
	if !DenteValido(req.Dente) {
		utils.ResponderErro(w, http.StatusBadRequest, "Dente inválido")
		return
	}
	if !FacesValidas[req.Face] {
		utils.ResponderErro(w, http.StatusBadRequest, "Face inválida")
		return
	}

	proc := ProcedimentoOdontograma{
		Dente:        req.Dente,
		Face:         req.Face,
		Procedimento: req.Procedimento,
		Observacao:   req.Observacao,
	}
	if err := h.Repository.AdicionarProcedimento(h.DB, prontuarioID, &proc); err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao registrar procedimento")
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, proc)
}
