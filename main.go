package main

import (
	"context"

	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/util/log"
	"school-api/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func Init() {
	provider.Init()
}

func main() {
	Init()
	c := config.GetConfig()

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	if err := provider.Get().UserService.EnsureBootstrapCoordinator(context.Background()); err != nil {
		log.Error("bootstrap coordinator: %v", err)
	}

	customizedRegister(h)
	h.Spin()
}
