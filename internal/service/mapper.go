package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matheus-soulza/simulador-enem/internal/domain"
)

var ErrInvalidSelection = errors.New("invalid selection")

const (
	minResidentes = 1
	maxResidentes = 20
)

// MapSubmission traduce las etiquetas del formulario a códigos numéricos.
func MapSubmission(s domain.Submission) (domain.AnswerRecord, error) {
	var (
		a   domain.AnswerRecord
		err error
	)

	if a.FaixaEtaria, err = labelIndex("faixa_etaria", domain.FaixaEtariaList, s.FaixaEtaria); err != nil {
		return domain.AnswerRecord{}, err
	}
	if s.QtdResidentes < minResidentes || s.QtdResidentes > maxResidentes {
		return domain.AnswerRecord{}, fmt.Errorf("%w: qtd_residentes %d out of range %d..%d", ErrInvalidSelection, s.QtdResidentes, minResidentes, maxResidentes)
	}
	a.QtdResidentes = s.QtdResidentes
	if a.RendaFamiliarOrd, err = labelIndex("renda", domain.RendaList, s.Renda); err != nil {
		return domain.AnswerRecord{}, err
	}

	codes := []struct {
		field string
		opts  []domain.Option
		value string
		dst   *string
	}{
		{"sexo", domain.SexoOptions, s.Sexo, &a.Sexo},
		{"escola", domain.EscolaOptions, s.Escola, &a.Escola},
		{"lingua", domain.LinguaOptions, s.Lingua, &a.Lingua},
		{"estado_civil", domain.EstadoCivilOptions, s.EstadoCivil, &a.EstadoCivil},
		{"cor_raca", domain.CorRacaOptions, s.CorRaca, &a.CorRaca},
		{"nacionalidade", domain.NacionalidadeOptions, s.Nacionalidade, &a.Nacionalidade},
		{"st_conclusao", domain.StConclusaoOptions, s.StConclusao, &a.StConclusao},
	}
	for _, c := range codes {
		if *c.dst, err = optionCode(c.field, c.opts, c.value); err != nil {
			return domain.AnswerRecord{}, err
		}
	}

	uf := strings.ToUpper(strings.TrimSpace(s.UF))
	if _, err := labelIndex("uf", domain.UFList, uf); err != nil {
		return domain.AnswerRecord{}, err
	}
	a.UF = uf

	if a.InstrucaoPaiOrd, a.InstrucaoPaiNS, err = ordinalOrNaoSei("instrucao_pai", domain.InstrucaoList, s.InstrucaoPai); err != nil {
		return domain.AnswerRecord{}, err
	}
	if a.InstrucaoMaeOrd, a.InstrucaoMaeNS, err = ordinalOrNaoSei("instrucao_mae", domain.InstrucaoList, s.InstrucaoMae); err != nil {
		return domain.AnswerRecord{}, err
	}
	if a.ProfPaiOrd, a.ProfPaiNS, err = ordinalOrNaoSei("profissao_pai", domain.ProfissaoList, s.ProfissaoPai); err != nil {
		return domain.AnswerRecord{}, err
	}
	if a.ProfMaeOrd, a.ProfMaeNS, err = ordinalOrNaoSei("profissao_mae", domain.ProfissaoList, s.ProfissaoMae); err != nil {
		return domain.AnswerRecord{}, err
	}

	switch strings.TrimSpace(s.Internet) {
	case domain.InternetComAcesso:
		a.InternetA, a.InternetB = 1, 0
	case domain.InternetSemAcesso:
		a.InternetA, a.InternetB = 0, 1
	default:
		return domain.AnswerRecord{}, fmt.Errorf("%w: internet %q", ErrInvalidSelection, s.Internet)
	}

	return a, nil
}

// labelIndex devuelve la posición 1-based de label en list.
func labelIndex(field string, list []string, label string) (int, error) {
	label = strings.TrimSpace(label)
	for i, v := range list {
		if v == label {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrInvalidSelection, field, label)
}

// ordinalOrNaoSei: "Não sei" va a (0, 1); una etiqueta listada a (índice, 0).
func ordinalOrNaoSei(field string, list []string, label string) (int, int, error) {
	if strings.TrimSpace(label) == domain.NaoSei {
		return 0, 1, nil
	}
	idx, err := labelIndex(field, list, label)
	if err != nil {
		return 0, 0, err
	}
	return idx, 0, nil
}

func optionCode(field string, opts []domain.Option, value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, o := range opts {
		if o.Value == value {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q", ErrInvalidSelection, field, value)
}
