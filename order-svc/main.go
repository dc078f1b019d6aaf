package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tomato-ordering/config"
	"tomato-ordering/logging"
	httpapi "tomato-ordering/order-svc/internal/api/http"
	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/service"
	"tomato-ordering/order-svc/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	demo := flag.Bool("demo", false, "run the reference ordering scenario and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *demo {
		cfg.App.Demo = true
	}

	log := logging.Init("order-svc", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifiers, closeNotifiers := buildNotifiers(cfg, log)
	defer closeNotifiers()

	restaurants := storage.NewRestaurantRegistry()
	orders := storage.NewOrderRegistry()
	users := storage.NewUserRegistry()

	catalog := service.NewCatalogService(restaurants, users)
	notifications := service.NewNotificationService(logging.New("notification"), notifiers...)
	payments := service.NewPaymentService(
		service.UPIQRGenerator{VPA: cfg.Payment.UPIVPA, Payee: "tomato"},
		notifications,
		logging.New("payment"),
	)
	orderSvc := service.NewOrderService(orders, payments, notifications, logging.New("order"))

	if cfg.App.Demo {
		if err := runDemo(ctx, catalog, orderSvc); err != nil {
			log.Error("demo failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	if cfg.Postgres.DSN != "" {
		db := config.MustInitPostgres(cfg.Postgres.DSN)
		defer db.Close()
		n, err := catalog.Load(ctx, storage.NewPostgresCatalog(db))
		if err != nil {
			log.Error("catalog not loaded", slog.Any("error", err))
			os.Exit(1)
		}
		log.Info("catalog loaded", slog.Int("restaurants", n))
	} else {
		catalog.SeedDefault()
	}

	srv := httpapi.NewServer(cfg.App.HTTPAddr, httpapi.NewRouter(httpapi.NewHandler(catalog, orderSvc)))
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := httpapi.StartServer(srv, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

// buildNotifiers connects every broker that has an address configured.
func buildNotifiers(cfg config.Config, log *slog.Logger) ([]service.Notifier, func()) {
	var (
		notifiers []service.Notifier
		closers   []func()
	)

	if len(cfg.Kafka.Brokers) > 0 {
		writer := config.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		notifiers = append(notifiers, storage.NewKafkaNotifier(writer))
		closers = append(closers, func() { writer.Close() })
		log.Info("kafka notifications enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	if cfg.Redis.Addr != "" {
		client := config.MustInitRedis(cfg.Redis.Addr)
		notifiers = append(notifiers, storage.NewRedisNotifier(client, cfg.Redis.Channel))
		closers = append(closers, func() { client.Close() })
		log.Info("redis notifications enabled", slog.String("channel", cfg.Redis.Channel))
	}

	if cfg.RabbitMQ.URL != "" {
		conn, ch := config.MustInitRabbit(cfg.RabbitMQ.URL)
		closers = append(closers, func() { ch.Close(); conn.Close() })
		notifier, err := storage.NewRabbitNotifier(ch, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Error("rabbitmq notifications disabled", slog.Any("error", err))
		} else {
			notifiers = append(notifiers, notifier)
			log.Info("rabbitmq notifications enabled", slog.String("exchange", cfg.RabbitMQ.Exchange))
		}
	}

	return notifiers, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

// runDemo places one UPI order for Chicken Biryani at Biryani Palace.
func runDemo(ctx context.Context, catalog *service.CatalogService, orders *service.OrderService) error {
	rest := catalog.SeedDefault()

	user, err := catalog.CreateUser(101, "Aniket", "Jabalpur", rest.ID)
	if err != nil {
		return err
	}
	user.Cart.Add(rest.Menu()[0])

	order, receipt, err := orders.Checkout(ctx, service.NewNormalOrderFactory(user, 1), domain.PaymentUPI)
	if err != nil {
		return err
	}

	fmt.Println(receipt.Message)
	fmt.Printf("Order confirmed! Type: %s\n", order.Type())
	return nil
}
