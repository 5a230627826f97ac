// Package store define el contrato con el almacén externo: las funciones
// almacenadas devuelven una única celda JSON que se decodifica UNA sola vez en
// la frontera del adaptador. El resto de la aplicación trabaja con Resultado
// y nunca vuelve a inspeccionar mapas crudos en busca de un campo "status".
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Invocador contrato de ejecución de una operación nombrada del almacén con
// argumentos posicionales, bajo las credenciales del rol indicado.
type Invocador interface {
	Invoke(ctx context.Context, rol, fn string, args ...any) (Resultado, error)
}

// Resultado valor etiquetado de una función almacenada: éxito con payload o
// error de dominio con mensaje. Un payload nil significa que la función no
// devolvió datos (NULL o sin fila).
type Resultado struct {
	valor      any
	mensajeErr string
	esErr      bool
}

// Exito construye un resultado de éxito con el payload decodificado.
func Exito(valor any) Resultado {
	return Resultado{valor: valor}
}

// ErrorDominio construye un resultado de error de negocio señalado por la base.
func ErrorDominio(mensaje string) Resultado {
	return Resultado{mensajeErr: mensaje, esErr: true}
}

// Decodificar interpreta la celda JSON devuelta por la función. Un objeto con
// {"status": "error", "message": ...} se convierte en ErrorDominio; cualquier
// otro valor (objeto, lista, escalar) pasa como éxito. Una celda NULL o vacía
// es éxito sin payload.
func Decodificar(celda []byte) (Resultado, error) {
	if len(celda) == 0 {
		return Exito(nil), nil
	}
	var v any
	if err := json.Unmarshal(celda, &v); err != nil {
		return Resultado{}, fmt.Errorf("store: decodificar resultado: %w", err)
	}
	if obj, ok := v.(map[string]any); ok {
		if s, _ := obj["status"].(string); s == "error" {
			msg, _ := obj["message"].(string)
			return ErrorDominio(msg), nil
		}
	}
	return Exito(v), nil
}

// EsError indica si la base señaló un error de negocio.
func (r Resultado) EsError() bool { return r.esErr }

// Mensaje devuelve el mensaje del error de dominio ("" si no hay error).
func (r Resultado) Mensaje() string { return r.mensajeErr }

// EsVacio indica que la función no devolvió datos.
func (r Resultado) EsVacio() bool { return !r.esErr && r.valor == nil }

// Valor devuelve el payload decodificado tal cual (nil si vacío o error).
func (r Resultado) Valor() any { return r.valor }

// Objeto devuelve el payload como objeto JSON, si lo es.
func (r Resultado) Objeto() (map[string]any, bool) {
	obj, ok := r.valor.(map[string]any)
	return obj, ok
}

// Lista devuelve el payload como lista JSON, si lo es.
func (r Resultado) Lista() ([]any, bool) {
	l, ok := r.valor.([]any)
	return l, ok
}

// ListaVacia indica payload ausente, lista vacía o nil: los listados usan esto
// para decidir entre 404 y fila de cortesía.
func (r Resultado) ListaVacia() bool {
	if r.EsVacio() {
		return true
	}
	if l, ok := r.Lista(); ok {
		return len(l) == 0
	}
	return false
}
