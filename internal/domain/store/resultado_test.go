package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

func TestDecodificar_Objeto(t *testing.T) {
	r, err := store.Decodificar([]byte(`{"id": 3, "nombre": "Firulais"}`))
	require.NoError(t, err)
	assert.False(t, r.EsError())
	assert.False(t, r.EsVacio())

	obj, ok := r.Objeto()
	require.True(t, ok)
	assert.Equal(t, "Firulais", obj["nombre"])
}

func TestDecodificar_ErrorDominio(t *testing.T) {
	r, err := store.Decodificar([]byte(`{"status": "error", "message": "La raza no existe"}`))
	require.NoError(t, err)
	assert.True(t, r.EsError())
	assert.Equal(t, "La raza no existe", r.Mensaje())
}

// Un objeto con status distinto de "error" es payload normal, no error.
func TestDecodificar_StatusOK(t *testing.T) {
	r, err := store.Decodificar([]byte(`{"status": "ok", "id": 1}`))
	require.NoError(t, err)
	assert.False(t, r.EsError())
}

func TestDecodificar_Lista(t *testing.T) {
	r, err := store.Decodificar([]byte(`[{"id": 1}, {"id": 2}]`))
	require.NoError(t, err)
	l, ok := r.Lista()
	require.True(t, ok)
	assert.Len(t, l, 2)
	assert.False(t, r.ListaVacia())
}

func TestDecodificar_Vacios(t *testing.T) {
	casos := map[string][]byte{
		"celda nil":   nil,
		"celda vacía": {},
		"JSON null":   []byte(`null`),
	}
	for nombre, celda := range casos {
		t.Run(nombre, func(t *testing.T) {
			r, err := store.Decodificar(celda)
			require.NoError(t, err)
			assert.True(t, r.EsVacio())
			assert.True(t, r.ListaVacia())
		})
	}

	r, err := store.Decodificar([]byte(`[]`))
	require.NoError(t, err)
	assert.False(t, r.EsVacio())
	assert.True(t, r.ListaVacia())
}

func TestDecodificar_JSONInvalido(t *testing.T) {
	_, err := store.Decodificar([]byte(`{no-es-json`))
	assert.Error(t, err)
}
