package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestNormalizeSequence(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		wantLen       int
		wantReason    Reason
		wantEnveloped bool
	}{
		{name: "Sequência pura", payload: `[{"entity_id":"B1","year":2024,"month":1,"actual_amount":10}]`, wantLen: 1},
		{name: "Sequência vazia", payload: `[]`, wantLen: 0},
		{name: "Envelope com data", payload: ` {"data":[{"entity_id":"B1","month":1},{"entity_id":"B1","month":2}]}`, wantLen: 2, wantEnveloped: true},
		{name: "Envelope sem data", payload: `{"items":[]}`, wantReason: ReasonEnvelopeWithoutData, wantEnveloped: true},
		{name: "Envelope com data nula", payload: `{"data":null}`, wantReason: ReasonEnvelopeWithoutData, wantEnveloped: true},
		{name: "Envelope com data objeto", payload: `{"data":{"month":1}}`, wantReason: ReasonNotSequence, wantEnveloped: true},
		{name: "Número solto", payload: `42`, wantReason: ReasonNotSequence},
		{name: "Texto solto", payload: `"ok"`, wantReason: ReasonNotSequence},
		{name: "JSON quebrado", payload: `[{"month":`, wantReason: ReasonInvalidJSON},
		{name: "Elementos com tipo errado", payload: `[1,2,3]`, wantReason: ReasonInvalidJSON},
		{name: "Payload vazio", payload: ``, wantReason: ReasonEmptyPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeSequence[domain.PerformanceRecord]([]byte(tt.payload))

			assert.NotNil(t, result.Records)
			assert.Len(t, result.Records, tt.wantLen)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.Equal(t, tt.wantReason == ReasonNone, result.OK())
			assert.Equal(t, tt.wantEnveloped, result.Enveloped)
		})
	}
}

func TestUnwrapEnvelope(t *testing.T) {
	assert.JSONEq(t, `{"entities":[],"categories":[]}`, string(UnwrapEnvelope([]byte(`{"data":{"entities":[],"categories":[]}}`))))
	assert.JSONEq(t, `{"entities":[]}`, string(UnwrapEnvelope([]byte(`{"entities":[]}`))))
	assert.Equal(t, `[1]`, string(UnwrapEnvelope([]byte(` [1] `))))
}
