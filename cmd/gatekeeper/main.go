// Command gatekeeper answers relay admission requests over gRPC and serves
// the operator control API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/i5heu/relay-gatekeeper/internal/apiServer"
	"github.com/i5heu/relay-gatekeeper/internal/config"
	"github.com/i5heu/relay-gatekeeper/internal/directory"
	"github.com/i5heu/relay-gatekeeper/internal/encryption"
	"github.com/i5heu/relay-gatekeeper/internal/engine"
	"github.com/i5heu/relay-gatekeeper/internal/keyValStore"
	"github.com/i5heu/relay-gatekeeper/internal/nauthz"
	"github.com/i5heu/relay-gatekeeper/internal/transport"
	"github.com/i5heu/relay-gatekeeper/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	logKeyConfig   = "config"
	logKeyBackend  = "backend"
	logKeyGRPCAddr = "grpcAddr"
	logKeyAPIAddr  = "apiAddr"
	logKeyAllow    = "allow"
	logKeyDeny     = "deny"
	logKeyAdmins   = "admins"
	logKeySignal   = "signal"
	logKeyError    = "error"
)

const shutdownTimeout = 5 * time.Second

type flags struct {
	configPath string
	dbPath     string
	debug      bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := pflag.NewFlagSet("gatekeeper", pflag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", config.DefaultPath,
		"Path to the YAML configuration file")
	fs.StringVar(&f.dbPath, "db", "",
		"Override the local account database path")
	fs.BoolVar(&f.debug, "debug", false,
		"Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	return f, nil
}

func main() { // A
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if f.dbPath != "" {
		cfg.DBPath = f.dbPath
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if f.debug {
		level = slog.LevelDebug
	}
	logger := logging.New(os.Stderr, level)
	slog.SetDefault(logger)

	logger.Info("starting gatekeeper",
		logKeyConfig, f.configPath,
		logKeyBackend, cfg.Backend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.InfoContext(ctx, "received shutdown signal",
			logKeySignal, sig.String())
		cancel()
	}()

	if err := run(ctx, cfg, f.debug, logger); err != nil {
		logger.Error("gatekeeper stopped", logKeyError, err)
		os.Exit(1)
	}
}

// run wires the directory, engine and both listeners and blocks until ctx
// is cancelled or a listener fails.
func run( // A
	ctx context.Context,
	cfg config.Config,
	debug bool,
	logger *slog.Logger,
) error {
	admins, err := cfg.Admins()
	if err != nil {
		return err
	}

	dir, err := openDirectory(ctx, cfg, debug, logger)
	if err != nil {
		return err
	}
	defer dir.Close()

	snap, err := dir.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	logger.InfoContext(ctx, "directory ready",
		logKeyBackend, cfg.Backend,
		logKeyAllow, len(snap.Allow),
		logKeyDeny, len(snap.Deny),
		logKeyAdmins, len(admins))

	eng := engine.New(engine.Config{
		Directory:     dir,
		Admins:        admins,
		ControlKind:   cfg.ControlKind,
		ImplicitAllow: cfg.ImplicitAllow,
		Logger:        logger,
	})

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	grpcServer := nauthz.NewGRPCServer(nauthz.NewServer(eng, logger))

	errCh := make(chan error, 2)
	go func() {
		logger.InfoContext(ctx, "grpc listening", logKeyGRPCAddr, cfg.GRPCAddr())
		errCh <- grpcServer.Serve(lis)
	}()

	var httpServer *http.Server
	if cfg.APIKey != "" {
		httpServer = &http.Server{
			Addr:              cfg.APIAddr(),
			Handler:           apiServer.New(dir, cfg.APIKey, apiServer.WithLogger(logger)),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.InfoContext(ctx, "control api listening", logKeyAPIAddr, cfg.APIAddr())
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("control api: %w", err)
			}
		}()
	} else {
		logger.InfoContext(ctx, "control api disabled; api_key is empty")
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	grpcServer.GracefulStop()
	if httpServer != nil {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(sctx); err != nil {
			logger.Warn("control api shutdown", logKeyError, err)
		}
	}
	return runErr
}

// openDirectory builds the backend selected in the configuration.
func openDirectory( // A
	ctx context.Context,
	cfg config.Config,
	debug bool,
	logger *slog.Logger,
) (directory.Directory, error) {
	switch cfg.Backend {
	case config.BackendReplicated:
		sk, err := cfg.SecretKey()
		if err != nil {
			return nil, err
		}
		keys, err := encryption.NewKeyPair(sk)
		if err != nil {
			return nil, err
		}
		admins, err := cfg.Admins()
		if err != nil {
			return nil, err
		}
		relays := transport.NewRelays(cfg.Relays, logger)
		dir, err := directory.NewReplicated(ctx, directory.ReplicatedConfig{
			Keys:           keys,
			Relays:         relays,
			Admins:         admins,
			RestoreTimeout: cfg.RestoreTimeout,
			PublishTimeout: cfg.PublishTimeout,
			Logger:         logger,
		})
		if err != nil {
			_ = relays.Close()
			return nil, fmt.Errorf("restore replicated directory: %w", err)
		}
		return &closingDirectory{Directory: dir, close: relays.Close}, nil
	default:
		kv, err := keyValStore.NewKeyValStore(keyValStore.StoreConfig{
			Path:             cfg.DBPath,
			MinimumFreeSpace: cfg.MinFreeGB,
			Logger:           badgerLogger(debug),
		})
		if err != nil {
			return nil, fmt.Errorf("open local directory: %w", err)
		}
		return directory.NewLocal(kv, logger), nil
	}
}

// closingDirectory also releases the relay connections on Close.
type closingDirectory struct {
	directory.Directory
	close func() error
}

func (d *closingDirectory) Close() error {
	return errors.Join(d.Directory.Close(), d.close())
}

func badgerLogger(debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	if debug {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
