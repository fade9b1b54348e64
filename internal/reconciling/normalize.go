package reconciling

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reason explica por que um payload foi substituído por uma sequência vazia
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonEmptyPayload        Reason = "empty-payload"
	ReasonInvalidJSON         Reason = "invalid-json"
	ReasonNotSequence         Reason = "not-a-sequence"
	ReasonEnvelopeWithoutData Reason = "envelope-without-data"
)

// Normalized é o resultado da normalização: uma sequência (possivelmente vazia)
// ou uma sequência vazia acompanhada do motivo
type Normalized[T any] struct {
	Records   []T
	Reason    Reason
	Enveloped bool
}

// OK indica que o payload era uma sequência válida
func (n Normalized[T]) OK() bool {
	return n.Reason == ReasonNone
}

type envelope struct {
	Data jsoniter.RawMessage `json:"data"`
}

// NormalizeSequence aceita uma sequência JSON pura ou um envelope {"data": [...]}.
// Qualquer outro formato vira sequência vazia com motivo; nunca retorna erro.
func NormalizeSequence[T any](raw []byte) Normalized[T] {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return empty[T](ReasonEmptyPayload, false)
	}

	switch trimmed[0] {
	case '[':
		return decodeSequence[T](trimmed, false)
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return empty[T](ReasonInvalidJSON, true)
		}

		data := bytes.TrimSpace(env.Data)
		if len(data) == 0 || bytes.Equal(data, []byte("null")) {
			return empty[T](ReasonEnvelopeWithoutData, true)
		}
		if data[0] != '[' {
			return empty[T](ReasonNotSequence, true)
		}
		return decodeSequence[T](data, true)
	}

	return empty[T](ReasonNotSequence, false)
}

// UnwrapEnvelope devolve o conteúdo de "data" quando o payload é um envelope;
// caso contrário devolve o próprio payload
func UnwrapEnvelope(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return trimmed
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return trimmed
	}
	return data
}

func decodeSequence[T any](raw []byte, enveloped bool) Normalized[T] {
	records := make([]T, 0)
	if err := json.Unmarshal(raw, &records); err != nil {
		return empty[T](ReasonInvalidJSON, enveloped)
	}
	return Normalized[T]{Records: records, Enveloped: enveloped}
}

func empty[T any](reason Reason, enveloped bool) Normalized[T] {
	return Normalized[T]{Records: make([]T, 0), Reason: reason, Enveloped: enveloped}
}
