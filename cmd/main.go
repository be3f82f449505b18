package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Pacotes de infraestrutura e utilitários
	"aieduc/config"
	"aieduc/internal/pkg/cache"
	"aieduc/internal/pkg/database"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/pkg/mailer"
	"aieduc/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"aieduc/internal/api/account"
	"aieduc/internal/api/catalog"
	"aieduc/internal/api/intake"
	"aieduc/internal/api/router"
	"aieduc/internal/repository/courserepo"
	"aieduc/internal/repository/intakerepo"
	"aieduc/internal/repository/userrepo"
	"aieduc/internal/service/accountservice"
	"aieduc/internal/service/catalogservice"
	"aieduc/internal/service/intakeservice"
)

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando API AI & Data Consulting...")

	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	// Se não existir, seguimos apenas com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL) — indisponibilidade aqui é fatal.
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados. Verifique DATABASE_URL e se o servidor está ativo.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Cliente Redis inicializado.", nil)

	// C. E-mail (SMTP) — host ausente desabilita o envio, sem erro.
	mail := mailer.NewMailer(cfg, log)

	// D. Serviço de Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	log.Debug("Serviço de Tokens JWT inicializado.", nil)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Contas
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	accountSvc := accountservice.NewService(userRepo, tokenSvc, mail, cfg.AdminEmails, log)
	accountHandler := account.NewHandler(accountSvc, log)
	log.Debug("Módulo de contas inicializado.", nil)

	// B. Catálogo de cursos — o serviço de contas também atua como Authorizer
	// (verificação de administrador contra a lista fixa).
	courseRepo := courserepo.NewCourseRepository(db, cacheClient, cfg.DBTimeout, log)
	catalogSvc := catalogservice.NewService(courseRepo, accountSvc, log)
	catalogHandler := catalog.NewHandler(catalogSvc, log)
	log.Debug("Módulo de catálogo inicializado.", nil)

	// C. Captação (leads e pré-inscrições)
	intakeRepo := intakerepo.NewIntakeRepository(db, cfg.DBTimeout, log)
	intakeSvc := intakeservice.NewService(intakeRepo, mail, cfg.AdminEmails, log)
	intakeHandler := intake.NewHandler(intakeSvc, log)
	log.Debug("Módulo de captação inicializado.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(accountHandler, catalogHandler, intakeHandler, tokenSvc, cfg.HeroImage)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
