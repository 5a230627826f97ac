package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

var _ store.Invocador = (*Store)(nil)

// Store ejecuta las funciones almacenadas de la base sobre el pool del rol
// que hace la petición. Toda la lógica de persistencia vive en esas funciones;
// aquí solo se arma el SELECT y se decodifica el JSON que devuelven.
type Store struct {
	conexiones *Conexiones
}

// NewStore construye el adaptador de funciones almacenadas.
func NewStore(conexiones *Conexiones) *Store {
	return &Store{conexiones: conexiones}
}

// Invoke ejecuta `SELECT fn(args...)` con el pool del rol y decodifica la
// celda JSON resultante. Los nombres de función son constantes del código,
// nunca entrada del usuario.
func (s *Store) Invoke(ctx context.Context, rol, fn string, args ...any) (store.Resultado, error) {
	pool, err := s.conexiones.Pool(rol)
	if err != nil {
		return store.Resultado{}, err
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("SELECT %s(%s)", fn, strings.Join(placeholders, ", "))

	var celda []byte
	if err := pool.QueryRow(ctx, query, args...).Scan(&celda); err != nil {
		return store.Resultado{}, fmt.Errorf("invocar %s: %w", fn, err)
	}

	res, err := store.Decodificar(celda)
	if err != nil {
		return store.Resultado{}, fmt.Errorf("decodificar respuesta de %s: %w", fn, err)
	}
	return res, nil
}
