package router

import (
	"github.com/beego/beego/v2/server/web"
	"github.com/modx/ai-service/app/controllers"
)

// Init 注册存活检查与指标路由
func Init() {
	web.Router("/", &controllers.RootController{}, "get:Index")
	web.Router("/health", &controllers.HealthController{}, "get:Health")
	web.Router("/metrics", &controllers.MetricsController{}, "get:Metrics")
}
