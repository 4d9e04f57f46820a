package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
)

// Aplica as migrações do histórico de sincronizações sem executar uma rodada
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !cfg.Database.Enabled() {
		logrus.Fatal("DATABASE_URL não configurada")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migrações aplicadas com sucesso")
}
