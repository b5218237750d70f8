package features

import (
	"github.com/matheus-soulza/simulador-enem/internal/domain"
	"github.com/matheus-soulza/simulador-enem/internal/names"
)

// Nombres lógicos de columna, tal como se usaron en el entrenamiento.
const (
	ColFaixaEtaria     = "TP_FAIXA_ETARIA"
	ColQtdResidentes   = "Qtd Residentes"
	ColRendaFamiliar   = "Renda Familiar_ord"
	ColInstrucaoPaiOrd = "Instrução do pai_ord"
	ColInstrucaoMaeOrd = "Instrução da mãe_ord"
	ColProfPaiOrd      = "Profissão do pai_ord"
	ColProfMaeOrd      = "Profissão da mãe_ord"
	ColInstrucaoPaiNS  = "Instrução do pai_nao_sei"
	ColInstrucaoMaeNS  = "Instrução da mãe_nao_sei"
	ColProfPaiNS       = "Profissão do pai_nao_sei"
	ColProfMaeNS       = "Profissão da mãe_nao_sei"
	ColInternetA       = "Acesso à internet_A"
	ColInternetB       = "Acesso à internet_B"

	PrefixSexo          = "TP_SEXO"
	PrefixEstadoCivil   = "TP_ESTADO_CIVIL"
	PrefixCorRaca       = "TP_COR_RACA"
	PrefixNacionalidade = "TP_NACIONALIDADE"
	PrefixStConclusao   = "TP_ST_CONCLUSAO"
	PrefixEscola        = "TP_ESCOLA"
	PrefixLingua        = "TP_LINGUA"
	PrefixUFProva       = "SG_UF_PROVA"
)

// OneHotField es un campo categórico expandido en columnas {Prefix}_{categoría}.
type OneHotField struct {
	Prefix     string
	Categories []string
	value      func(domain.AnswerRecord) string
}

// OneHotFields lista los campos categóricos en el orden en que se codifican.
var OneHotFields = []OneHotField{
	{Prefix: PrefixSexo, Categories: domain.OptionValues(domain.SexoOptions), value: func(a domain.AnswerRecord) string { return a.Sexo }},
	{Prefix: PrefixEstadoCivil, Categories: domain.OptionValues(domain.EstadoCivilOptions), value: func(a domain.AnswerRecord) string { return a.EstadoCivil }},
	{Prefix: PrefixCorRaca, Categories: domain.OptionValues(domain.CorRacaOptions), value: func(a domain.AnswerRecord) string { return a.CorRaca }},
	{Prefix: PrefixNacionalidade, Categories: domain.OptionValues(domain.NacionalidadeOptions), value: func(a domain.AnswerRecord) string { return a.Nacionalidade }},
	{Prefix: PrefixStConclusao, Categories: domain.OptionValues(domain.StConclusaoOptions), value: func(a domain.AnswerRecord) string { return a.StConclusao }},
	{Prefix: PrefixEscola, Categories: domain.OptionValues(domain.EscolaOptions), value: func(a domain.AnswerRecord) string { return a.Escola }},
}

// linguaField se codifica después de la UF.
var linguaField = OneHotField{Prefix: PrefixLingua, Categories: domain.OptionValues(domain.LinguaOptions), value: func(a domain.AnswerRecord) string { return a.Lingua }}

// OneHotColumn arma el nombre {prefix}_{category}.
func OneHotColumn(prefix, category string) string {
	return prefix + "_" + category
}

// Encoder convierte un AnswerRecord en la fila que consume el modelo.
type Encoder struct {
	schema   Schema
	resolver *names.Resolver
}

func NewEncoder(schema Schema, resolver *names.Resolver) *Encoder {
	return &Encoder{schema: schema, resolver: resolver}
}

func (e *Encoder) Schema() Schema {
	return e.schema
}

// Encode escribe cada columna conocida; las que no se resuelven quedan en cero
// y se informan en Diagnostics.
func (e *Encoder) Encode(a domain.AnswerRecord) (*Row, Diagnostics) {
	w := rowWriter{row: NewRow(e.schema), resolver: e.resolver}

	w.set(ColFaixaEtaria, float64(a.FaixaEtaria))
	w.set(ColQtdResidentes, float64(a.QtdResidentes))
	w.set(ColRendaFamiliar, float64(a.RendaFamiliarOrd))

	w.set(ColInstrucaoPaiOrd, float64(a.InstrucaoPaiOrd))
	w.set(ColInstrucaoMaeOrd, float64(a.InstrucaoMaeOrd))
	w.set(ColProfPaiOrd, float64(a.ProfPaiOrd))
	w.set(ColProfMaeOrd, float64(a.ProfMaeOrd))
	w.set(ColInstrucaoPaiNS, float64(a.InstrucaoPaiNS))
	w.set(ColInstrucaoMaeNS, float64(a.InstrucaoMaeNS))
	w.set(ColProfPaiNS, float64(a.ProfPaiNS))
	w.set(ColProfMaeNS, float64(a.ProfMaeNS))

	for _, f := range OneHotFields {
		w.oneHot(f, a)
	}

	// UF: solo la columna seleccionada.
	w.set(OneHotColumn(PrefixUFProva, a.UF), 1)

	w.oneHot(linguaField, a)

	w.set(ColInternetA, float64(a.InternetA))
	w.set(ColInternetB, float64(a.InternetB))

	return w.row, w.diag
}

// LogicalColumns lista todas las columnas que el encoder puede escribir,
// incluidas todas las UF.
func LogicalColumns() []string {
	cols := []string{
		ColFaixaEtaria, ColQtdResidentes, ColRendaFamiliar,
		ColInstrucaoPaiOrd, ColInstrucaoMaeOrd, ColProfPaiOrd, ColProfMaeOrd,
		ColInstrucaoPaiNS, ColInstrucaoMaeNS, ColProfPaiNS, ColProfMaeNS,
	}
	for _, f := range OneHotFields {
		for _, c := range f.Categories {
			cols = append(cols, OneHotColumn(f.Prefix, c))
		}
	}
	for _, uf := range domain.UFList {
		cols = append(cols, OneHotColumn(PrefixUFProva, uf))
	}
	for _, c := range linguaField.Categories {
		cols = append(cols, OneHotColumn(PrefixLingua, c))
	}
	return append(cols, ColInternetA, ColInternetB)
}

// Audit resuelve cada columna lógica contra el esquema sin escribir valores.
func (e *Encoder) Audit() Diagnostics {
	var d Diagnostics
	for _, col := range LogicalColumns() {
		if res := e.resolver.Resolve(col); !res.Found {
			d.record(res)
		}
	}
	return d
}

type rowWriter struct {
	row      *Row
	resolver *names.Resolver
	diag     Diagnostics
}

func (w *rowWriter) set(col string, v float64) {
	res := w.resolver.Resolve(col)
	if !res.Found || !w.row.Set(res.Canonical, v) {
		w.diag.record(res)
	}
}

func (w *rowWriter) oneHot(f OneHotField, a domain.AnswerRecord) {
	selected := f.value(a)
	for _, c := range f.Categories {
		v := 0.0
		if c == selected {
			v = 1
		}
		w.set(OneHotColumn(f.Prefix, c), v)
	}
}
