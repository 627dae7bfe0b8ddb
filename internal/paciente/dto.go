package paciente

import "time"

type criarPacienteRequest struct {
	Nome           string `json:"nome" validate:"required,min=3"`
	CPF            string `json:"cpf" validate:"required"`
	DataNascimento string `json:"dataNascimento" validate:"required"`
	Genero         string `json:"genero"`

	Email           string `json:"email" validate:"omitempty,email"`
	TelefoneCelular string `json:"telefoneCelular" validate:"required"`
	TelefoneFixo    string `json:"telefoneFixo"`

	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`

	ContatoEmergenciaNome       string `json:"contatoEmergenciaNome"`
	ContatoEmergenciaTelefone   string `json:"contatoEmergenciaTelefone"`
	ContatoEmergenciaParentesco string `json:"contatoEmergenciaParentesco"`

	HistoricoMedico string `json:"historicoMedico"`
}

type atualizarPacienteRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=3"`
	CPF            *string `json:"cpf"`
	DataNascimento *string `json:"dataNascimento"`
	Genero         *string `json:"genero"`

	Email           *string `json:"email" validate:"omitempty,email"`
	TelefoneCelular *string `json:"telefoneCelular"`
	TelefoneFixo    *string `json:"telefoneFixo"`

	CEP         *string `json:"cep"`
	Logradouro  *string `json:"logradouro"`
	Numero      *string `json:"numero"`
	Complemento *string `json:"complemento"`
	Bairro      *string `json:"bairro"`
	Cidade      *string `json:"cidade"`
	Estado      *string `json:"estado"`

	ContatoEmergenciaNome       *string `json:"contatoEmergenciaNome"`
	ContatoEmergenciaTelefone   *string `json:"contatoEmergenciaTelefone"`
	ContatoEmergenciaParentesco *string `json:"contatoEmergenciaParentesco"`

	HistoricoMedico *string `json:"historicoMedico"`
}

func (req criarPacienteRequest) paraModelo() (Paciente, error) {
	nascimento, err := time.Parse(time.RFC3339, req.DataNascimento)
	if err != nil {
		// Aceita também somente a data, como o formulário envia.
		nascimento, err = time.Parse("2006-01-02", req.DataNascimento)
		if err != nil {
			return Paciente{}, err
		}
	}
	return Paciente{
		Nome:                        req.Nome,
		CPF:                         req.CPF,
		DataNascimento:              nascimento,
		Genero:                      req.Genero,
		Email:                       req.Email,
		TelefoneCelular:             req.TelefoneCelular,
		TelefoneFixo:                req.TelefoneFixo,
		CEP:                         req.CEP,
		Logradouro:                  req.Logradouro,
		Numero:                      req.Numero,
		Complemento:                 req.Complemento,
		Bairro:                      req.Bairro,
		Cidade:                      req.Cidade,
		Estado:                      req.Estado,
		ContatoEmergenciaNome:       req.ContatoEmergenciaNome,
		ContatoEmergenciaTelefone:   req.ContatoEmergenciaTelefone,
		ContatoEmergenciaParentesco: req.ContatoEmergenciaParentesco,
		HistoricoMedico:             req.HistoricoMedico,
		Status:                      StatusAtivo,
	}, nil
}

// aplicarAtualizacao copia campo a campo os valores presentes no patch.
func aplicarAtualizacao(p *Paciente, req atualizarPacienteRequest) error {
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.CPF != nil {
		p.CPF = *req.CPF
	}
	if req.DataNascimento != nil {
		nascimento, err := time.Parse(time.RFC3339, *req.DataNascimento)
		if err != nil {
			nascimento, err = time.Parse("2006-01-02", *req.DataNascimento)
			if err != nil {
				return err
			}
		}
		p.DataNascimento = nascimento
	}
	if req.Genero != nil {
		p.Genero = *req.Genero
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.TelefoneCelular != nil {
		p.TelefoneCelular = *req.TelefoneCelular
	}
	if req.TelefoneFixo != nil {
		p.TelefoneFixo = *req.TelefoneFixo
	}
	if req.CEP != nil {
		p.CEP = *req.CEP
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
	if req.ContatoEmergenciaNome != nil {
		p.ContatoEmergenciaNome = *req.ContatoEmergenciaNome
	}
	if req.ContatoEmergenciaTelefone != nil {
		p.ContatoEmergenciaTelefone = *req.ContatoEmergenciaTelefone
	}
	if req.ContatoEmergenciaParentesco != nil {
		p.ContatoEmergenciaParentesco = *req.ContatoEmergenciaParentesco
	}
	if req.HistoricoMedico != nil {
		p.HistoricoMedico = *req.HistoricoMedico
	}
	return nil
}
