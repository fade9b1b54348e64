package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "valor negativo", code: ErrNegativeValue, wantStatus: http.StatusBadRequest},
		{name: "marca inexistente", code: ErrBrandNotFound, wantStatus: http.StatusNotFound},
		{name: "lote grande", code: ErrBatchTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			decoded, ok := Decode(rec.Body.Bytes())
			require.True(t, ok)
			assert.Equal(t, tt.code, decoded.Code)
			assert.Equal(t, "mensagem", decoded.Message)
		})
	}
}

func TestDecode_InvalidBody(t *testing.T) {
	_, ok := Decode([]byte("<html>erro</html>"))
	assert.False(t, ok)

	_, ok = Decode([]byte(`{"message":"sem código"}`))
	assert.False(t, ok)
}
