package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type HealthHandler struct {
	SpreadsheetID string
	RabbitMQ      *amqp091.Connection
	BedrockModel  string
	StartTime     time.Time
}

type healthResponse struct {
	Status       string            `json:"status"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(spreadsheetID string, rabbitMQ *amqp091.Connection, bedrockModel string) *HealthHandler {
	return &HealthHandler{
		SpreadsheetID: spreadsheetID,
		RabbitMQ:      rabbitMQ,
		BedrockModel:  bedrockModel,
		StartTime:     time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.SpreadsheetID != "" {
		deps["sheets"] = "configured"
	} else {
		deps["sheets"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.BedrockModel != "" {
		deps["bedrock"] = "configured"
	} else {
		deps["bedrock"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := healthResponse{
		Status:       status,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(response)
}
