package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort           string
	GoogleProject        string
	StorageBucket        string
	Environment          string
	JWTSecret            string
	JWTExpiry            int64
	GeocodeURL           string
	GeocodeAPIKey        string
	ContractTemplatePath string
	ConverterBinary      string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		GoogleProject:        getEnv("GOOGLE_PROJECT_ID", ""),
		StorageBucket:        getEnv("STORAGE_BUCKET", ""),
		Environment:          getEnv("ENVIRONMENT", "development"),
		JWTSecret:            getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:            getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		GeocodeURL:           getEnv("GEOCODE_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
		GeocodeAPIKey:        getEnv("GEOCODE_API_KEY", ""),
		ContractTemplatePath: getEnv("CONTRACT_TEMPLATE_PATH", "./templates/Sublease-Agreement-Template.docx"),
		ConverterBinary:      getEnv("CONVERTER_BINARY", "libreoffice"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
