package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// источник каталога: путь к .json/.csv/.xls/.xlsx или http(s) URL
	CatalogSource    string
	CatalogHeaderRow int
	CatalogTimeout   time.Duration

	SupportPhone     string
	SupportTeam      string
	DefaultPriceType string
}

// Load читает .env (если есть) и переменные окружения.
func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "1"))
	hdr, _ := strconv.Atoi(getenv("CATALOG_HEADER_ROW", "1"))
	tmo, _ := strconv.Atoi(getenv("CATALOG_TIMEOUT_SEC", "15"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	if hdr < 1 {
		hdr = 1
	}
	if tmo < 1 {
		tmo = 15
	}
	return Config{
		Host:             getenv("HOST", "127.0.0.1"),
		Port:             port,
		AllowOrigins:     origins,
		LogLevel:         getenv("LOG_LEVEL", "info"),
		MaxUploadMB:      mb,
		LogFile:          getenv("LOG_FILE", "logs/netsize-service.log"),
		CatalogSource:    getenv("CATALOG_SOURCE", "data/MQD_Sizes_Unit_Color_and_Links.json"),
		CatalogHeaderRow: hdr,
		CatalogTimeout:   time.Duration(tmo) * time.Second,
		SupportPhone:     getenv("SUPPORT_PHONE", "917304692553"),
		SupportTeam:      getenv("SUPPORT_TEAM", "ArmorX"),
		DefaultPriceType: getenv("DEFAULT_PRICE_TYPE", "Selling Price"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
