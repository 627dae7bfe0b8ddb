package profissional

import "time"

type criarProfissionalRequest struct {
	Nome           string `json:"nome" validate:"required,min=3"`
	Email          string `json:"email" validate:"required,email"`
	Telefone       string `json:"telefone" validate:"required"`
	CRO            string `json:"cro" validate:"required"`
	Especialidade  string `json:"especialidade" validate:"required"`
	DataNascimento string `json:"dataNascimento" validate:"required"`
	CPF            string `json:"cpf" validate:"required"`
	RG             string `json:"rg"`

	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}

type atualizarProfissionalRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=3"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Telefone       *string `json:"telefone"`
	CRO            *string `json:"cro"`
	Especialidade  *string `json:"especialidade"`
	DataNascimento *string `json:"dataNascimento"`
	CPF            *string `json:"cpf"`
	RG             *string `json:"rg"`

	Logradouro  *string `json:"logradouro"`
	Numero      *string `json:"numero"`
	Complemento *string `json:"complemento"`
	Bairro      *string `json:"bairro"`
	Cidade      *string `json:"cidade"`
	Estado      *string `json:"estado"`
	CEP         *string `json:"cep"`
}

// listaItemDTO é o formato enxuto da rota /profissionais/lista, usada em selects.
type listaItemDTO struct {
	ID     uint   `json:"id"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

func especialidadeValida(v string) bool {
	for _, e := range Especialidades {
		if e == v {
			return true
		}
	}
	return false
}

func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (req criarProfissionalRequest) paraModelo() (Profissional, error) {
	nascimento, err := parseData(req.DataNascimento)
	if err != nil {
		return Profissional{}, err
	}
	return Profissional{
		Nome:           req.Nome,
		Email:          req.Email,
		Telefone:       req.Telefone,
		CRO:            req.CRO,
		Especialidade:  req.Especialidade,
		DataNascimento: nascimento,
		CPF:            req.CPF,
		RG:             req.RG,
		Logradouro:     req.Logradouro,
		Numero:         req.Numero,
		Complemento:    req.Complemento,
		Bairro:         req.Bairro,
		Cidade:         req.Cidade,
		Estado:         req.Estado,
		CEP:            req.CEP,
		Status:         StatusAtivo,
	}, nil
}

func aplicarAtualizacao(p *Profissional, req atualizarProfissionalRequest) error {
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Telefone != nil {
		p.Telefone = *req.Telefone
	}
	if req.CRO != nil {
		p.CRO = *req.CRO
	}
	if req.Especialidade != nil {
		p.Especialidade = *req.Especialidade
	}
	if req.DataNascimento != nil {
		nascimento, err := parseData(*req.DataNascimento)
		if err != nil {
			return err
		}
		p.DataNascimento = nascimento
	}
	if req.CPF != nil {
		p.CPF = *req.CPF
	}
	if req.RG != nil {
		p.RG = *req.RG
	}
	if req.Logradouro != nil {
		p.Logradouro = *req.Logradouro
	}
	if req.Numero != nil {
		p.Numero = *req.Numero
	}
	if req.Complemento != nil {
		p.Complemento = *req.Complemento
	}
	if req.Bairro != nil {
		p.Bairro = *req.Bairro
	}
	if req.Cidade != nil {
		p.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if req.CEP != nil {
		p.CEP = *req.CEP
	}
	return nil
}
