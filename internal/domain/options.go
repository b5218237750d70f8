package domain

// NaoSei es la opción "no sabe" de las preguntas sobre los padres.
const NaoSei = "Não sei"

const (
	InternetComAcesso = "Tem acesso"
	InternetSemAcesso = "Não tem acesso"
)

// Option es un valor codificado con su etiqueta legible.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var UFList = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO", "MA", "MG", "MS", "MT",
	"PA", "PB", "PE", "PI", "PR", "RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
}

// InstrucaoList se codifica 1..7 por posición.
var InstrucaoList = []string{
	"Nunca estudou.",
	"Não completou a 4ª série/5º ano do Ensino Fundamental.",
	"Completou a 4ª série/5º ano, mas não completou a 8ª série/9º ano do Ensino Fundamental.",
	"Completou a 8ª série/9º ano do Ensino Fundamental, mas não completou o Ensino Médio.",
	"Completou o Ensino Médio, mas não completou a Faculdade.",
	"Completou a Faculdade, mas não completou a Pós-graduação.",
	"Completou a Pós-graduação.",
}

// ProfissaoList se codifica 1..5 por posición.
var ProfissaoList = []string{
	"Grupo 1: Agricultura/extrativismo/boia-fria etc.",
	"Grupo 2: Serviços gerais/comércio/auxiliares/operacionais.",
	"Grupo 3: Indústria/ofícios/operadores/motoristas.",
	"Grupo 4: Técnicos/professores (básico)/supervisão/autônomos/pequenos empresários.",
	"Grupo 5: Profissionais de nível superior/alta gestão/empresários médios e grandes.",
}

// RendaList se codifica 1..17 por posición.
var RendaList = []string{
	"Nenhuma Renda",
	"Até 1 Salário Mínimo",
	"De 1 a 1,5 Salários Mínimos",
	"De 1,5 a 2 Salários Mínimos",
	"De 2 a 2,5 Salários Mínimos",
	"De 2,5 a 3 Salários Mínimos",
	"De 3 a 4 Salários Mínimos",
	"De 4 a 5 Salários Mínimos",
	"De 5 a 6 Salários Mínimos",
	"De 6 a 7 Salários Mínimos",
	"De 7 a 8 Salários Mínimos",
	"De 8 a 9 Salários Mínimos",
	"De 9 a 10 Salários Mínimos",
	"De 10 a 12 Salários Mínimos",
	"De 12 a 15 Salários Mínimos",
	"De 15 a 20 Salários Mínimos",
	"Acima de 20 Salários Mínimos",
}

// FaixaEtariaList se codifica 1..20 por posición.
var FaixaEtariaList = []string{
	"Menor de 17 anos", "17 anos", "18 anos", "19 anos", "20 anos", "21 anos", "22 anos",
	"23 anos", "24 anos", "25 anos", "26–30 anos", "31–35 anos", "36–40 anos", "41–45 anos",
	"46–50 anos", "51–55 anos", "56–60 anos", "61–65 anos", "66–70 anos", "Maior de 70 anos",
}

var SexoOptions = []Option{
	{Value: "F", Label: "F"},
	{Value: "M", Label: "M"},
}

var EscolaOptions = []Option{
	{Value: "1", Label: "Não respondeu"},
	{Value: "2", Label: "Pública"},
	{Value: "3", Label: "Privada"},
}

var LinguaOptions = []Option{
	{Value: "0", Label: "Inglês"},
	{Value: "1", Label: "Espanhol"},
}

var EstadoCivilOptions = []Option{
	{Value: "0.0", Label: "Não informado"},
	{Value: "1.0", Label: "Solteiro(a)"},
	{Value: "2.0", Label: "Casado/Companheiro"},
	{Value: "3.0", Label: "Divorciado(a)"},
	{Value: "4.0", Label: "Viúvo(a)"},
}

var CorRacaOptions = []Option{
	{Value: "0", Label: "Não declarado"},
	{Value: "1", Label: "Branco"},
	{Value: "2", Label: "Preto"},
	{Value: "3", Label: "Pardo"},
	{Value: "4", Label: "Amarelo"},
	{Value: "5", Label: "Indígena"},
	{Value: "6", Label: "Sem informação"},
}

var NacionalidadeOptions = []Option{
	{Value: "0", Label: "Não informada"},
	{Value: "1", Label: "Brasileiro"},
	{Value: "2", Label: "Naturalizado"},
	{Value: "3", Label: "Estrangeiro"},
	{Value: "4", Label: "Brasileiro nascido no exterior"},
}

var StConclusaoOptions = []Option{
	{Value: "1", Label: "Já concluiu"},
	{Value: "2", Label: "Conclui este ano"},
	{Value: "4", Label: "Conclui depois deste ano"},
}

var InternetOptions = []string{InternetComAcesso, InternetSemAcesso}

// OptionValues devuelve solo los valores codificados, en orden.
func OptionValues(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

// WithNaoSei antepone "Não sei" a una lista de etiquetas.
func WithNaoSei(list []string) []string {
	return append([]string{NaoSei}, list...)
}

// FormOptions agrupa todas las listas del formulario.
type FormOptions struct {
	FaixaEtaria   []string `json:"faixa_etaria"`
	Renda         []string `json:"renda"`
	UF            []string `json:"uf"`
	Instrucao     []string `json:"instrucao"`
	Profissao     []string `json:"profissao"`
	Internet      []string `json:"internet"`
	Sexo          []Option `json:"sexo"`
	Escola        []Option `json:"escola"`
	Lingua        []Option `json:"lingua"`
	EstadoCivil   []Option `json:"estado_civil"`
	CorRaca       []Option `json:"cor_raca"`
	Nacionalidade []Option `json:"nacionalidade"`
	StConclusao   []Option `json:"st_conclusao"`
}

func AllFormOptions() FormOptions {
	return FormOptions{
		FaixaEtaria:   FaixaEtariaList,
		Renda:         RendaList,
		UF:            UFList,
		Instrucao:     WithNaoSei(InstrucaoList),
		Profissao:     WithNaoSei(ProfissaoList),
		Internet:      InternetOptions,
		Sexo:          SexoOptions,
		Escola:        EscolaOptions,
		Lingua:        LinguaOptions,
		EstadoCivil:   EstadoCivilOptions,
		CorRaca:       CorRacaOptions,
		Nacionalidade: NacionalidadeOptions,
		StConclusao:   StConclusaoOptions,
	}
}
