package agendamento

import "time"

type criarAgendamentoRequest struct {
	PacienteID     uint   `json:"pacienteId" validate:"required"`
	ProfissionalID uint   `json:"profissionalId" validate:"required"`
	Data           string `json:"data" validate:"required"`
	HoraInicio     string `json:"horaInicio" validate:"required"`
	HoraFim        string `json:"horaFim" validate:"required"`
	Procedimento   string `json:"procedimento" validate:"required"`
	Observacoes    string `json:"observacoes"`
	Status         string `json:"status"`
}

type atualizarAgendamentoRequest struct {
	PacienteID     *uint   `json:"pacienteId"`
	ProfissionalID *uint   `json:"profissionalId"`
	Data           *string `json:"data"`
	HoraInicio     *string `json:"horaInicio"`
	HoraFim        *string `json:"horaFim"`
	Procedimento   *string `json:"procedimento"`
	Observacoes    *string `json:"observacoes"`
	Status         *string `json:"status"`
}

// parseData aceita RFC3339 ou somente a data. O resultado é sempre
// normalizado para UTC, para a janela do dia não depender do fuso que
// cada cliente envia.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}

func parseHora(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (req criarAgendamentoRequest) paraModelo() (Agendamento, error) {
	data, err := parseData(req.Data)
	if err != nil {
		return Agendamento{}, err
	}
	inicio, err := parseHora(req.HoraInicio)
	if err != nil {
		return Agendamento{}, err
	}
	fim, err := parseHora(req.HoraFim)
	if err != nil {
		return Agendamento{}, err
	}
	status := req.Status
	if status == "" {
		status = StatusAgendado
	}
	return Agendamento{
		PacienteID:     req.PacienteID,
		ProfissionalID: req.ProfissionalID,
		Data:           data,
		HoraInicio:     inicio,
		HoraFim:        fim,
		Procedimento:   req.Procedimento,
		Observacoes:    req.Observacoes,
		Status:         status,
	}, nil
}

// aplicarAtualizacao funde o patch sobre o agendamento carregado e informa se
// algum dos campos que disparam a verificação de conflito veio no patch.
func aplicarAtualizacao(a *Agendamento, req atualizarAgendamentoRequest) (verificarConflito bool, err error) {
	if req.PacienteID != nil {
		a.PacienteID = *req.PacienteID
	}
	if req.ProfissionalID != nil {
		a.ProfissionalID = *req.ProfissionalID
		verificarConflito = true
	}
	if req.Data != nil {
		data, err := parseData(*req.Data)
		if err != nil {
			return false, err
		}
		a.Data = data
		verificarConflito = true
	}
	if req.HoraInicio != nil {
		inicio, err := parseHora(*req.HoraInicio)
		if err != nil {
			return false, err
		}
		a.HoraInicio = inicio
		verificarConflito = true
	}
	if req.HoraFim != nil {
		fim, err := parseHora(*req.HoraFim)
		if err != nil {
			return false, err
		}
		a.HoraFim = fim
		verificarConflito = true
	}
	if req.Procedimento != nil {
		a.Procedimento = *req.Procedimento
	}
	if req.Observacoes != nil {
		a.Observacoes = *req.Observacoes
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	return verificarConflito, nil
}
