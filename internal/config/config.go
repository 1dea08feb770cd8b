package config

import "os"

type BrigadaServiceConfig struct {
	Port        string
	PostgresCfg PostgresConfig
	FirebaseCfg FirebaseConfig
	RabbitMQCfg RabbitMQConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
}

type RabbitMQConfig struct {
	Host     string
	Username string
	Password string
	Port     string
}

func New() *BrigadaServiceConfig {
	return &BrigadaServiceConfig{
		Port: getEnvOrDefault("PORT", "5000"),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "brigada_service"),
			Username: getEnvOrDefault("POSTGRES_USER", "user"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "password"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		FirebaseCfg: FirebaseConfig{
			CredentialsPath: getEnvOrDefault("FIREBASE_CREDENTIALS", "firebase-adminsdk.json"),
			ProjectID:       getEnvOrDefault("FIREBASE_PROJECT_ID", ""),
		},
		RabbitMQCfg: RabbitMQConfig{
			Host:     getEnvOrDefault("RABBITMQ_HOST", "rabbitmq"),
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
