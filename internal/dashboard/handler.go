package dashboard

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/odontosys/api-clinica/internal/utils"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Buscar responde com o resumo geral da clínica (GET /dashboard).
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Repository.ObterResumo(h.DB, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("erro ao montar resumo do dashboard")
		utils.ResponderErro(w, http.StatusInternalServerError, "Erro ao buscar dados do dashboard")
		return
	}

	utils.ResponderJSON(w, http.StatusOK, resumo)
}
