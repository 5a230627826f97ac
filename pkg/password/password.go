// Package password encapsula el hash y la verificación de contraseñas como una
// capacidad opaca inyectable: el resto de la aplicación nunca toca bcrypt
// directamente ni mantiene contexto global de hashing.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher contrato de hash-y-verificación.
type Hasher interface {
	Hash(plano string) (string, error)
	Verificar(plano, hash string) error
}

// BcryptHasher implementación sobre golang.org/x/crypto/bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher construye el hasher con el costo por defecto de bcrypt.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

// Hash genera un hash bcrypt de la contraseña en texto plano.
func (h *BcryptHasher) Hash(plano string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plano), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verificar compara la contraseña en texto plano contra el hash almacenado.
// Error no nulo significa que no coinciden.
func (h *BcryptHasher) Verificar(plano, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plano))
}
