package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	Seed SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// CredencialesRol usuario y contraseña de PostgreSQL para un rol de la clínica.
// La base define un rol de conexión por cada perfil de la aplicación; los GRANT
// sobre las funciones almacenadas viven en la base, no aquí.
type CredencialesRol struct {
	Usuario    string
	Contrasena string
}

// DBConfig configuración de PostgreSQL. La aplicación no se conecta con un
// único usuario: cada rol (administrador, veterinario, secretaria) tiene sus
// propias credenciales y su propio pool.
type DBConfig struct {
	Host    string
	Port    int
	DBName  string
	SSLMode string

	Administrador CredencialesRol
	Veterinario   CredencialesRol
	Secretaria    CredencialesRol
}

// DSN construye el connection string para un rol con URL encoding
// (las contraseñas pueden traer caracteres especiales).
func (c DBConfig) DSN(cred CredencialesRol) string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cred.Usuario, cred.Contrasena),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Algoritmo  string // HS256 por defecto
	Expiration int    // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SeedConfig datos del administrador inicial (cmd/seed).
type SeedConfig struct {
	AdminNombre     string
	AdminEmail      string
	AdminContrasena string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. JWT_SECRET es obligatorio: sin él no se puede
// firmar ni validar ningún token, así que se falla en el arranque.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "veterinaria-api"),
		},
		DB: DBConfig{
			Host:    getString(v, "DB_HOST", "localhost"),
			Port:    getInt(v, "DB_PORT", 5432),
			DBName:  getString(v, "DB_NAME", "veterinaria"),
			SSLMode: getString(v, "DB_SSLMODE", "disable"),
			Administrador: CredencialesRol{
				Usuario:    getString(v, "ADMIN_USER", ""),
				Contrasena: getString(v, "ADMIN_PASSWORD", ""),
			},
			Veterinario: CredencialesRol{
				Usuario:    getString(v, "VETERINARIO_USER", ""),
				Contrasena: getString(v, "VETERINARIO_PASSWORD", ""),
			},
			Secretaria: CredencialesRol{
				Usuario:    getString(v, "SECRETARIA_USER", ""),
				Contrasena: getString(v, "SECRETARIA_PASSWORD", ""),
			},
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Algoritmo:  getString(v, "JWT_ALGORITHM", "HS256"),
			Expiration: getInt(v, "JWT_EXPIRES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "veterinaria-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Seed: SeedConfig{
			AdminNombre:     getString(v, "SEED_ADMIN_NOMBRE", "Administrador"),
			AdminEmail:      getString(v, "SEED_ADMIN_EMAIL", "admin@admin.com"),
			AdminContrasena: getString(v, "SEED_ADMIN_PASSWORD", ""),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
