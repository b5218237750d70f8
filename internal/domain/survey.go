package domain

import "time"

// Submission son las selecciones crudas del formulario, tal como se muestran.
type Submission struct {
	FaixaEtaria   string `json:"faixa_etaria" yaml:"faixa_etaria" form:"faixa_etaria"`
	QtdResidentes int    `json:"qtd_residentes" yaml:"qtd_residentes" form:"qtd_residentes"`
	Renda         string `json:"renda" yaml:"renda" form:"renda"`
	Sexo          string `json:"sexo" yaml:"sexo" form:"sexo"`
	Escola        string `json:"escola" yaml:"escola" form:"escola"`
	UF            string `json:"uf" yaml:"uf" form:"uf"`
	Lingua        string `json:"lingua" yaml:"lingua" form:"lingua"`
	EstadoCivil   string `json:"estado_civil" yaml:"estado_civil" form:"estado_civil"`
	CorRaca       string `json:"cor_raca" yaml:"cor_raca" form:"cor_raca"`
	Nacionalidade string `json:"nacionalidade" yaml:"nacionalidade" form:"nacionalidade"`
	StConclusao   string `json:"st_conclusao" yaml:"st_conclusao" form:"st_conclusao"`
	InstrucaoPai  string `json:"instrucao_pai" yaml:"instrucao_pai" form:"instrucao_pai"`
	InstrucaoMae  string `json:"instrucao_mae" yaml:"instrucao_mae" form:"instrucao_mae"`
	ProfissaoPai  string `json:"profissao_pai" yaml:"profissao_pai" form:"profissao_pai"`
	ProfissaoMae  string `json:"profissao_mae" yaml:"profissao_mae" form:"profissao_mae"`
	Internet      string `json:"internet" yaml:"internet" form:"internet"`
}

// DefaultSubmission replica los valores iniciales del formulario.
func DefaultSubmission() Submission {
	return Submission{
		FaixaEtaria:   FaixaEtariaList[1],
		QtdResidentes: 3,
		Renda:         RendaList[5],
		Sexo:          "F",
		Escola:        "2",
		UF:            UFList[24],
		Lingua:        "0",
		EstadoCivil:   "0.0",
		CorRaca:       "3",
		Nacionalidade: "1",
		StConclusao:   "2",
		InstrucaoPai:  NaoSei,
		InstrucaoMae:  NaoSei,
		ProfissaoPai:  NaoSei,
		ProfissaoMae:  NaoSei,
		Internet:      InternetComAcesso,
	}
}

// AnswerRecord es la respuesta ya codificada; las claves JSON son los
// nombres lógicos que usa el encoder.
type AnswerRecord struct {
	FaixaEtaria      int    `json:"TP_FAIXA_ETARIA"`
	QtdResidentes    int    `json:"Qtd_Residentes"`
	RendaFamiliarOrd int    `json:"Renda_Familiar_ord"`
	Sexo             string `json:"TP_SEXO"`
	Escola           string `json:"TP_ESCOLA"`
	UF               string `json:"UF"`
	Lingua           string `json:"TP_LINGUA"`
	EstadoCivil      string `json:"TP_ESTADO_CIVIL"`
	CorRaca          string `json:"TP_COR_RACA"`
	Nacionalidade    string `json:"TP_NACIONALIDADE"`
	StConclusao      string `json:"TP_ST_CONCLUSAO"`

	InstrucaoPaiOrd int `json:"Instrucao_pai_ord"`
	InstrucaoMaeOrd int `json:"Instrucao_mae_ord"`
	ProfPaiOrd      int `json:"Prof_pai_ord"`
	ProfMaeOrd      int `json:"Prof_mae_ord"`
	InstrucaoPaiNS  int `json:"Instrucao_pai_ns"`
	InstrucaoMaeNS  int `json:"Instrucao_mae_ns"`
	ProfPaiNS       int `json:"Prof_pai_ns"`
	ProfMaeNS       int `json:"Prof_mae_ns"`

	InternetA int `json:"Internet_A"`
	InternetB int `json:"Internet_B"`
}

// FeatureValue es una columna del vector enviado al modelo.
type FeatureValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Prediction es el resultado completo de una simulación.
type Prediction struct {
	ID          string              `json:"id"`
	Score       float64             `json:"score"`
	Answers     AnswerRecord        `json:"answers"`
	Features    []FeatureValue      `json:"features"`
	Missing     []string            `json:"missing_columns,omitempty"`
	Suggestions map[string][]string `json:"suggestions,omitempty"`
	Cached      bool                `json:"cached"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Encoding es la fila codificada sin inferencia, con su diagnóstico.
type Encoding struct {
	Answers     AnswerRecord        `json:"answers"`
	Features    []FeatureValue      `json:"features"`
	Missing     []string            `json:"missing_columns,omitempty"`
	Suggestions map[string][]string `json:"suggestions,omitempty"`
}

// SchemaReport describe las columnas del modelo y las que el encoder no encuentra.
type SchemaReport struct {
	Columns     []string            `json:"columns"`
	Unresolved  []string            `json:"unresolved,omitempty"`
	Suggestions map[string][]string `json:"suggestions,omitempty"`
}
