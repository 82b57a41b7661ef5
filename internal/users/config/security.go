package config

// SecurityConfig содержит настройки хэширования паролей.
type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"USERS_BCRYPT_COST" env-default:"10"`
}
