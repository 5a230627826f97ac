package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores del servicio de tokens. ErrTokenInvalido cubre firma incorrecta,
// token malformado o expirado; ErrClaimsInvalidos cubre un token bien firmado
// al que le faltan campos obligatorios o trae un id no numérico. El caller
// responde 401 en ambos casos pero los mensajes difieren.
var (
	ErrTokenInvalido   = errors.New("token inválido o expirado")
	ErrClaimsInvalidos = errors.New("token inválido: faltan campos obligatorios")
)

// Config parámetros de firma. Se construye una vez en el arranque y se inyecta;
// no hay secreto global a nivel de paquete.
type Config struct {
	Secret     string
	Algoritmo  string // HS256, HS384, HS512
	ExpMinutos int
	Issuer     string
}

// TokenData identidad decodificada de un token válido.
type TokenData struct {
	ID    int
	Email string
	Rol   string
}

// claims incluye los claims estándar más los campos de identidad. ID se declara
// como any porque hay emisores que lo serializan como número y otros como
// string numérico; la coerción a int ocurre en Analizar.
type claims struct {
	jwt.RegisteredClaims
	ID    any    `json:"id"`
	Email string `json:"email"`
	Rol   string `json:"role"`
}

// Generar firma un token de sesión con id, email y rol más expiración
// "ahora + ExpMinutos". Sin estado: no hay almacenamiento ni revocación.
func Generar(cfg Config, id int, email, rol string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	metodo := jwt.GetSigningMethod(algoritmo(cfg))
	if metodo == nil {
		return "", fmt.Errorf("jwt: algoritmo desconocido %q", cfg.Algoritmo)
	}
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   strconv.Itoa(id),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpMinutos) * time.Minute)),
		},
		ID:    id,
		Email: email,
		Rol:   rol,
	}
	token := jwt.NewWithClaims(metodo, c)
	return token.SignedString([]byte(cfg.Secret))
}

// Analizar valida firma y expiración y devuelve la identidad embebida.
// Retorna ErrTokenInvalido si la firma no verifica, el token está malformado
// o expiró; ErrClaimsInvalidos si el token es válido pero le faltan id, email
// o rol, o el id no puede interpretarse como entero.
func Analizar(cfg Config, tokenString string) (*TokenData, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{algoritmo(cfg)}))
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	if c.Email == "" || c.Rol == "" || c.ID == nil {
		return nil, ErrClaimsInvalidos
	}
	id, ok := coerceID(c.ID)
	if !ok {
		return nil, ErrClaimsInvalidos
	}
	return &TokenData{ID: id, Email: c.Email, Rol: c.Rol}, nil
}

func algoritmo(cfg Config) string {
	if cfg.Algoritmo == "" {
		return "HS256"
	}
	return cfg.Algoritmo
}

// coerceID acepta el id como número JSON o como string numérico.
func coerceID(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		id, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
