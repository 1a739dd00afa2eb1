package config

import "time"

// APIConfig holds runtime configuration for the API service.
type APIConfig struct {
	Environment   string
	Addr          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTL      time.Duration
}

// LoadAPIConfig constructs an APIConfig from environment variables.
func LoadAPIConfig() APIConfig {
	return APIConfig{
		Environment:   GetString("APP_ENV", "development"),
		Addr:          ":" + GetString("PORT", "3000"),
		MongoURI:      GetString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetString("MONGO_DB", "expense_tracker"),
		JWTSecret:     GetString("JWT_SECRET", "supersecuresecret"),
		TokenTTL:      time.Duration(GetInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}
