package main

import (
	"context"
	"net/http"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	OpenCarts int               `json:"open_carts"`
}

// healthcheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports the state of MongoDB, RabbitMQ and the inventory service
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string, len(app.healthChecks)+1),
		OpenCarts: app.cartService.OpenCarts(),
	}

	for name, p := range app.healthChecks {
		response.Services[name] = "ok"
		if err := p.Ping(ctx); err != nil {
			app.logger.Warnw("health check failed", "service", name, "error", err)
			response.Services[name] = "error"
			response.Status = "unhealthy"
		}
	}

	// broker: assume ok while connected
	if app.broker != nil {
		response.Services["queue"] = "ok"
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	if err := writeJson(w, status, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
