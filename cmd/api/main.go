package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vaidashi/fastfood-api/docs"
	"github.com/vaidashi/fastfood-api/internal/api"
	"github.com/vaidashi/fastfood-api/internal/clients"
	"github.com/vaidashi/fastfood-api/internal/config"
	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/handlers"
	"github.com/vaidashi/fastfood-api/internal/messaging"
	"github.com/vaidashi/fastfood-api/internal/outbox"
	"github.com/vaidashi/fastfood-api/internal/repository"
	"github.com/vaidashi/fastfood-api/internal/service"
	"github.com/vaidashi/fastfood-api/pkg/circuitbreaker"
	"github.com/vaidashi/fastfood-api/pkg/kafka"
	"github.com/vaidashi/fastfood-api/pkg/logger"
	"github.com/vaidashi/fastfood-api/pkg/metrics"
)

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs --outputTypes go

// @title Fast food order API
// @version 1.0.0
// @description Orders, customers, products and the kitchen queue of a fast-food restaurant.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.NewLogger(cfg.LogLevel, cfg.Env)
	defer func() { _ = l.Sync() }()

	if err := run(cfg, l); err != nil {
		l.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, l logger.Logger) error {
	l.Info("Starting API server...", "env", cfg.Env, "integration", cfg.Integration.Mode, "kafka", cfg.Kafka.Enabled)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("api", reg)

	db, err := database.New(cfg, l)

	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	orderRepo := repository.NewOrderRepository(db, l)
	itemRepo := repository.NewOrderItemRepository(db, l)
	customerRepo := repository.NewCustomerRepository(db, l)
	productRepo := repository.NewProductRepository(db, l)
	imageRepo := repository.NewProductImageRepository(db, l)
	outboxRepo := repository.NewOutboxRepository(db, l)
	dlqRepo := repository.NewDeadLetterRepository(db, l)

	topics := messaging.Topics{
		events.TopicOrders:      cfg.Kafka.OrdersTopic,
		events.TopicPayments:    cfg.Kafka.PaymentsTopic,
		events.TopicProductions: cfg.Kafka.ProductionsTopic,
	}

	var (
		bus         service.MessageBus
		localBus    *messaging.LocalBus
		processor   *outbox.Processor
		deadLetters api.DeadLetters
	)

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, l)

		if err != nil {
			return err
		}
		defer producer.Close()

		if cfg.Outbox.Enabled {
			bus = messaging.NewOutboxBus(outboxRepo, l)

			processor = outbox.NewProcessor(outboxRepo, dlqRepo, outbox.ProcessorConfig{
				PollingInterval: cfg.Outbox.PollInterval,
				BatchSize:       cfg.Outbox.BatchSize,
				MaxRetries:      cfg.Outbox.MaxRetries,
			}, m, l)
			processor.SetFallback(outbox.NewKafkaHandler(producer, topics, l))

			deadLetters = outbox.NewDeadLetterService(dlqRepo, l)
		} else {
			bus = messaging.NewKafkaBus(producer, topics, l)
		}
	} else {
		localBus = messaging.NewLocalBus(l)
		bus = localBus
	}

	paymentBreaker := circuitbreaker.New(circuitbreaker.Config{Name: "payment", FailureThreshold: 5, ResetTimeout: 30 * time.Second, HalfOpenMaxCalls: 1})
	productionBreaker := circuitbreaker.New(circuitbreaker.Config{Name: "production", FailureThreshold: 5, ResetTimeout: 30 * time.Second, HalfOpenMaxCalls: 1})
	whatsappBreaker := circuitbreaker.New(circuitbreaker.Config{Name: "whatsapp", FailureThreshold: 5, ResetTimeout: time.Minute, HalfOpenMaxCalls: 1})

	var (
		payments   service.PaymentGateway
		production service.ProductionGateway
	)

	if cfg.Integration.Mode == config.IntegrationMessaging {
		payments = messaging.NewPaymentPublisher(bus)
		production = messaging.NewProductionPublisher(bus)
	} else {
		payments = clients.NewPaymentClient(cfg.Integration.PaymentBaseURL, clients.Options{Breaker: paymentBreaker}, l)
		production = clients.NewProductionClient(cfg.Integration.ProductionBaseURL, clients.Options{Breaker: productionBreaker}, l)
	}

	orderSvc := service.NewOrderService(orderRepo, payments, production, bus,
		service.OrderServiceConfig{PaymentBroker: cfg.Integration.PaymentBroker}, m, l)
	manager := service.NewOrderManager(orderSvc, itemRepo, customerRepo, productRepo, l)

	var texts handlers.TextSender
	if cfg.WhatsApp.BaseURL != "" {
		texts = clients.NewWhatsAppClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Token, clients.Options{Breaker: whatsappBreaker}, l)
	}

	orderEvents := handlers.NewOrderEventsHandler(manager, customerRepo, texts, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var consumer *kafka.Consumer

	if localBus != nil {
		localBus.Subscribe(events.TopicOrders, orderEvents.Handle)
	} else {
		consumer, err = kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers:       cfg.Kafka.Brokers,
			Topics:        []string{topics.Resolve(events.TopicOrders)},
			ConsumerGroup: cfg.Kafka.ConsumerGroup,
		}, l)

		if err != nil {
			return err
		}

		consumer.RegisterHandler(topics.Resolve(events.TopicOrders), orderEvents)

		if err := consumer.Start(ctx); err != nil {
			return err
		}
	}

	if processor != nil {
		processor.Start()
	}

	server := api.NewServer(api.Services{
		Orders:      manager,
		Customers:   service.NewCustomerService(customerRepo, l),
		Products:    service.NewProductService(productRepo, imageRepo, l),
		OrderItems:  service.NewOrderItemService(itemRepo, orderRepo, productRepo, l),
		DeadLetters: deadLetters,
	}, db, api.Options{
		Port:        cfg.Port,
		Breakers:    []*circuitbreaker.Breaker{paymentBreaker, productionBreaker, whatsappBreaker},
		SwaggerJSON: docs.JSON,
	}, m, l)

	serveErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		l.Info("Shutting down server...")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("Server forced to shutdown", "error", err)
	}

	if processor != nil {
		processor.Stop()
	}

	if consumer != nil {
		if err := consumer.Stop(); err != nil {
			l.Error("Error stopping Kafka consumer", "error", err)
		}
	}

	l.Info("Server exiting")
	return nil
}
