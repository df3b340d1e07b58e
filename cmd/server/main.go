package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Sandrogaltran08/cief/config"
	"github.com/Sandrogaltran08/cief/internal/api/handler"
	"github.com/Sandrogaltran08/cief/internal/api/router"
	"github.com/Sandrogaltran08/cief/internal/repository"
	"github.com/Sandrogaltran08/cief/internal/service"
	"github.com/Sandrogaltran08/cief/pkg/database"
	applogger "github.com/Sandrogaltran08/cief/pkg/logger"
)

func main() {
	// 1. Carrega a configuração
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializa o log
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao inicializar log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicação",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_path", cfg.Database.Path),
	)

	// 3. Abre o banco SQLite
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("erro ao conectar no banco de dados", zap.Error(err))
	}

	// 3.1 Aplica as migrações (cria as tabelas na primeira execução)
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("erro ao obter sql.DB subjacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("erro na migração do banco", zap.Error(err))
	}

	// 4. Injeção de dependências: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	// 5. Inicializa as rotas
	engine := router.Setup(cfg, h, logger)

	// 6. Sobe o servidor HTTP com desligamento gracioso
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	// 7. Aguarda sinal do sistema para desligar
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal de desligamento recebido", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("erro ao desligar o servidor", zap.Error(err))
	}

	if closeDB, err := db.DB(); err == nil {
		closeDB.Close()
	}

	logger.Info("servidor encerrado")
}
