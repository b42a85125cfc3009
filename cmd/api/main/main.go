//go:build lambda
// +build lambda

package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/rescuedao/rescuedao-api/apps/api/server"
	"github.com/rescuedao/rescuedao-api/libs/go/config"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

var (
	ginLambda *ginadapter.GinLambda
	srv       *server.Server
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger
	logger.InitLogger(cfg.Stage)

	// The execution environment is frozen between invocations, so the
	// role refresher only advances while a request is being served.
	ctx := context.Background()
	srv, err = server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	go func() {
		if err := srv.RunBackground(ctx); err != nil {
			logger.Error("Role refresher stopped", zap.Error(err))
		}
	}()

	ginLambda = ginadapter.New(srv.Router())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("method", req.HTTPMethod),
	)

	resp, err := ginLambda.ProxyWithContext(ctx, req)
	if err != nil {
		return resp, err
	}

	// Operations accepted with 202 run in goroutines that would freeze with
	// the environment, so the invocation ends only once they settle.
	if err := srv.WaitIdle(ctx); err != nil {
		logger.Warn("Invocation ended with operations in flight",
			zap.String("path", req.Path),
			zap.Error(err),
		)
	}
	return resp, nil
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
