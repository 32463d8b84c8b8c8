package config

// CORSConfig содержит настройки междоменных запросов для фронтенда.
type CORSConfig struct {
	AllowedOrigin    string `yaml:"allowed_origin" env:"ESTATE_CORS_ALLOWED_ORIGIN" env-default:"http://localhost:3000"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"ESTATE_CORS_ALLOW_CREDENTIALS" env-default:"true"`
}
