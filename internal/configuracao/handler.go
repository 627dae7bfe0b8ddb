package configuracao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/odontosys/api-clinica/internal/utils"
)

var validate = validator.New()

type enderecoClinica struct {
	CEP         string `json:"cep" validate:"required"`
	Logradouro  string `json:"logradouro" validate:"required"`
	Numero      string `json:"numero" validate:"required"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro" validate:"required"`
	Cidade      string `json:"cidade" validate:"required"`
	Estado      string `json:"estado" validate:"required,len=2"`
}

type clinicaConfig struct {
	Nome     string          `json:"nome" validate:"required,min=3"`
	CNPJ     string          `json:"cnpj" validate:"required"`
	Telefone string          `json:"telefone" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Endereco enderecoClinica `json:"endereco" validate:"required"`
}

type notificacoesConfig struct {
	EmailAgendamento *bool `json:"emailAgendamento" validate:"required"`
	EmailLembrete    *bool `json:"emailLembrete" validate:"required"`
	WhatsappLembrete *bool `json:"whatsappLembrete" validate:"required"`
}

type financeiroConfig struct {
	DiasVencimento       int `json:"diasVencimento" validate:"required,min=1,max=90"`
	LembreteAntecedencia int `json:"lembreteAntecedencia" validate:"required,min=1,max=30"`
}

type configuracaoRequest struct {
	Clinica      clinicaConfig      `json:"clinica" validate:"required"`
	Notificacoes notificacoesConfig `json:"notificacoes" validate:"required"`
	Financeiro   financeiroConfig   `json:"financeiro" validate:"required"`
}

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GET /configuracoes
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	var c Configuracao
	err := h.DB.First(&c, IDUnico).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ResponderJSON(w, http.StatusOK, nil)
			return
		}
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar configurações")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}

// PUT /configuracoes faz upsert sobre a linha de ID fixo.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var req configuracaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.ResponderErro(w, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	clinica, _ := json.Marshal(req.Clinica)
	notificacoes, _ := json.Marshal(req.Notificacoes)
	financeiro, _ := json.Marshal(req.Financeiro)

	c := Configuracao{
		ID:           IDUnico,
		Clinica:      clinica,
		Notificacoes: notificacoes,
		Financeiro:   financeiro,
	}
	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"clinica", "notificacoes", "financeiro", "updated_at"}),
	}).Create(&c).Error
	if err != nil {
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao atualizar configurações")
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}
