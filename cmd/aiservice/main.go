package main

import (
	"log"
	"net"
	"strconv"

	"github.com/beego/beego/v2/server/web"
	"github.com/modx/ai-service/app/bootstrap"
	"github.com/modx/ai-service/app/router"
	"github.com/modx/ai-service/internal/config"
	"github.com/modx/ai-service/internal/di"
	"github.com/modx/ai-service/internal/logger"
	"github.com/modx/ai-service/internal/server"
	pb "github.com/modx/ai-service/proto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	app, err := bootstrap.Init()
	if err != nil {
		log.Fatalf("failed to bootstrap application: %v", err)
	}
	defer app.Shutdown()

	container := di.InitContainer()
	if err := di.RegisterProviders(container); err != nil {
		logger.Fatal("Failed to register providers", zap.Error(err))
	}

	// 启动gRPC服务
	if err := di.Invoke(func(aiServer *server.AIServer) {
		go serveGRPC(aiServer)
	}); err != nil {
		logger.Fatal("Failed to build AI server", zap.Error(err))
	}

	// 健康检查HTTP服务在主线程运行
	router.Init()
	web.BConfig.AppName = "AI Service"
	web.BConfig.CopyRequestBody = true
	if p, err := strconv.Atoi(config.AppConfig.Server.HealthPort); err == nil {
		web.BConfig.Listen.HTTPPort = p
	} else {
		web.BConfig.Listen.HTTPPort = 10000
	}

	logger.Info("🚀 Starting health check server", zap.Int("port", web.BConfig.Listen.HTTPPort))
	web.Run()
}

// serveGRPC 启动gRPC服务器
func serveGRPC(aiServer *server.AIServer) {
	addr := ":" + config.AppConfig.Server.GRPCPort
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal("Failed to listen for gRPC", zap.String("addr", addr), zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAIServiceServer(grpcServer, aiServer)

	logger.Info("✅ gRPC server started", zap.String("addr", addr))
	if err := grpcServer.Serve(lis); err != nil {
		logger.Fatal("gRPC server stopped", zap.Error(err))
	}
}
