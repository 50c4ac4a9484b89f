package controllers

import (
	"net/http"

	"github.com/modx/ai-service/internal/database"
	"github.com/modx/ai-service/internal/interfaces"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RootController 存活检查根路由
type RootController struct {
	BaseController
}

// Index 返回静态OK负载（供平台健康探针使用）
func (c *RootController) Index() {
	c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"message": "AI Service is running 🚀",
	})
}

// HealthController 健康检查控制器
type HealthController struct {
	BaseController
}

// Health 返回各依赖的连接状态
func (c *HealthController) Health() {
	dbStatus := "ok"
	var db interfaces.DatabaseInterface
	if database.DB != nil {
		db = database.NewDatabase(database.DB)
	}
	if db == nil {
		dbStatus = "not connected"
	} else if err := db.HealthCheck(); err != nil {
		dbStatus = "unreachable"
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"database": dbStatus,
	})
}

// MetricsController Prometheus指标控制器
type MetricsController struct {
	BaseController
}

// Metrics 返回Prometheus格式的指标
func (c *MetricsController) Metrics() {
	promhttp.Handler().ServeHTTP(c.Ctx.ResponseWriter, c.Ctx.Request)
}
