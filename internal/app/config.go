package app

import "os"

type Config struct {
	Env  string
	Port string

	// DBDSN selects postgres when set; otherwise the store is a local
	// sqlite file at SQLitePath, created on first start.
	DBDSN      string
	SQLitePath string

	TemplateGlob  string
	StaticDir     string
	UploadDir     string
	SessionSecret string

	SMTPHost    string
	SMTPPort    string
	SMTPFrom    string
	NotifyEmail string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("APP_PORT", "8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		SQLitePath:    getEnv("SQLITE_PATH", "coffee.db"),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
		StaticDir:     getEnv("STATIC_DIR", "web/static"),
		UploadDir:     getEnv("UPLOAD_DIR", "web/static/images"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-secret"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "25"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		NotifyEmail:   os.Getenv("ORDER_NOTIFY_EMAIL"),
	}
}
