package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lemonberrylabs/arith/pkg/api"
	grpcapi "github.com/lemonberrylabs/arith/pkg/api/grpc"
	"github.com/lemonberrylabs/arith/pkg/config"
)

func cmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve expression evaluation over HTTP and gRPC",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("config", "", "YAML config file (env ARITH_CONFIG)")
	cmd.Flags().Int("port", 0, "HTTP server port (default 8787, env PORT)")
	cmd.Flags().Int("grpc-port", 0, "gRPC server port (default 8788, env GRPC_PORT)")
	cmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")
	cmd.Flags().Int("max-expression-length", 0, "Longest accepted expression (default 400, env MAX_EXPRESSION_LENGTH)")
	return cmd
}

// loadServeConfig layers command-line flags over config.Load.
func loadServeConfig(cmd *cobra.Command) (config.Config, error) {
	path := os.Getenv("ARITH_CONFIG")
	if v, _ := cmd.Flags().GetString("config"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		cfg.Port = v
	}
	if v, _ := cmd.Flags().GetInt("grpc-port"); v != 0 {
		cfg.GRPCPort = v
	}
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.Host = v
	}
	if v, _ := cmd.Flags().GetInt("max-expression-length"); v != 0 {
		cfg.MaxExpressionLength = v
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	server := api.New(cfg.MaxExpressionLength)
	grpcServer := grpcapi.New(cfg.MaxExpressionLength)

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr())
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			log.Fatalf("gRPC server error: %v", err)
		}
	}()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down arith server...")
		grpcServer.GracefulStop()
		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("arith %s listening on %s (max expression length %d)", version.Core(), cfg.HTTPAddr(), cfg.MaxExpressionLength)
	return server.Listen(cfg.HTTPAddr())
}
