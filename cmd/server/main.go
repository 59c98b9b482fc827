package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/gateway/rest"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/queries/get_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/session"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/add_product"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/adjust_quantity"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/close_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/finalize_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/open_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/remove_product"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/reset_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/update_checkout"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/validate_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/cache"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/memory"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/find_by_barcode"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/list_products"
	"github.com/murkotick/grocery-pos-service/internal/app/ledger"
	"github.com/murkotick/grocery-pos-service/internal/app/ledger/repo"
	"github.com/murkotick/grocery-pos-service/internal/pkg/clock"
	committer "github.com/murkotick/grocery-pos-service/internal/pkg/committer"
	"github.com/murkotick/grocery-pos-service/internal/pkg/config"
	"github.com/murkotick/grocery-pos-service/internal/pkg/logging"
	httpcart "github.com/murkotick/grocery-pos-service/internal/transport/http/cart"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("server stopped")
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.RealClock{}

	var client *spanner.Client
	if cfg.UsesSpanner() {
		var err error
		client, err = spanner.NewClient(ctx, cfg.Spanner.Database)
		if err != nil {
			return fmt.Errorf("spanner.NewClient: %w", err)
		}
		defer client.Close()
	}

	catalog, err := buildCatalog(ctx, cfg, client, logger)
	if err != nil {
		return err
	}
	gateway := buildGateway(cfg, client, clk, logger)
	store := session.NewMemoryStore(clk)

	// CQRS wiring
	cmds := httpcart.Commands{
		Open:     open_cart.NewInteractor(store),
		Add:      add_product.NewInteractor(store, catalog),
		Adjust:   adjust_quantity.NewInteractor(store),
		Remove:   remove_product.NewInteractor(store),
		Checkout: update_checkout.NewInteractor(store),
		Validate: validate_cart.NewInteractor(store),
		Finalize: finalize_cart.NewInteractor(store, gateway, logger.Named("finalize")),
		Reset:    reset_cart.NewInteractor(store),
		Close:    close_cart.NewInteractor(store),
	}
	qrys := httpcart.Queries{
		Cart:     get_cart.NewHandler(store),
		Product:  get_product.NewHandler(catalog),
		Barcode:  find_by_barcode.NewHandler(catalog),
		Products: list_products.NewHandler(catalog),
	}
	h := httpcart.NewHandler(cmds, qrys, logger.Named("http"))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpcart.NewRouter(h, logger, cfg.HTTP.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		sweepSessions(gctx, store, cfg.Sessions, logger)
		return nil
	})

	if cfg.GRPC.Addr != "" {
		if err := serveHealth(gctx, g, cfg, logger); err != nil {
			return err
		}
	}

	return g.Wait()
}

func buildCatalog(ctx context.Context, cfg config.Config, client *spanner.Client, logger *zap.Logger) (contracts.Catalog, error) {
	var catalog contracts.Catalog
	switch cfg.Catalog.Source {
	case config.CatalogMemory:
		mem, err := memory.LoadFile(cfg.Catalog.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog seed: %w", err)
		}
		logger.Info("in-memory catalog loaded", zap.Int("products", mem.Len()))
		catalog = mem
	default:
		catalog = queries.NewSpannerCatalog(client)
	}

	if cfg.Redis.Addr == "" {
		return catalog, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The cache degrades to pass-through; keep serving.
		logger.Warn("redis unreachable, catalog cache will bypass", zap.Error(err))
	}
	return cache.NewRedisCatalog(catalog, rdb, cfg.Redis.CacheTTL, logger.Named("catalog-cache")), nil
}

func buildGateway(cfg config.Config, client *spanner.Client, clk clock.Clock, logger *zap.Logger) contracts.TransactionGateway {
	if cfg.Gateway.Mode == config.GatewayREST {
		return rest.NewGateway(rest.Config{
			BaseURL: cfg.Gateway.BaseURL,
			Token:   cfg.Gateway.Token,
			Timeout: cfg.Gateway.Timeout,
		}, clk, logger.Named("backend"))
	}
	return ledger.NewGateway(repo.NewTransactionRepo(), repo.NewOutboxRepo(), committer.NewAdapter(client), clk)
}

func sweepSessions(ctx context.Context, store *session.MemoryStore, cfg config.SessionsConfig, logger *zap.Logger) {
	if cfg.IdleTTL <= 0 || cfg.SweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.EvictIdle(cfg.IdleTTL); n > 0 {
				logger.Info("evicted idle carts", zap.Int("count", n), zap.Int("open", store.Len()))
			}
		}
	}
}

func serveHealth(ctx context.Context, g *errgroup.Group, cfg config.Config, logger *zap.Logger) error {
	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPC.Addr, err)
	}

	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	g.Go(func() error {
		logger.Info("gRPC health listening", zap.String("addr", cfg.GRPC.Addr))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		hs.Shutdown()
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(cfg.HTTP.ShutdownTimeout):
			srv.Stop()
		}
		return nil
	})
	return nil
}
