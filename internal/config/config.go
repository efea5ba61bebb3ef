package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL is optional for the CLI; the server refuses to start without it.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"omitempty,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"omitempty,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"gte=1,lte=1440"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"gte=1,lte=43200"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=4,lte=31"`

	// OfflineDemo lets sign-in proceed with a demo session when the user
	// store cannot be reached. Off unless explicitly enabled.
	OfflineDemo bool `mapstructure:"offline_demo"`
}

// LLMConfig contains all LLM integration related settings.
// An empty GeminiAPIKey is valid: the content service then serves fallbacks.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	ModelName             string `mapstructure:"model_name"              validate:"required"`
	BaseURL               string `mapstructure:"base_url"                validate:"omitempty,url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// HasCredential reports whether a Gemini API key is configured.
func (c LLMConfig) HasCredential() bool {
	return c.GeminiAPIKey != ""
}
