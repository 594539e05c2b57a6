package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão Postgres a partir do ambiente (DB_HOST,
// DB_PORT, DB_NAME, DB_USERNAME, DB_PASSWORD, DB_SSL_MODE_DISABLE).
//
// TranslateError fica ligado para o driver converter violação de
// restrição única em gorm.ErrDuplicatedKey — é disso que depende a
// idempotência da emissão de fatura.
func Conectar() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	nome := os.Getenv("DB_NAME")
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")

	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, senha, nome, porta, sslMode)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
}
