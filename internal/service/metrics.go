package service

import "github.com/prometheus/client_golang/prometheus"

var (
	toolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_tool_calls_total",
			Help: "Total number of tool invocations requested by the model",
		},
		[]string{"tool"},
	)

	toolRoundsExceededTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_tool_rounds_exceeded_total",
			Help: "Chat requests aborted for exceeding the tool round limit",
		},
	)

	promptTokens = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_prompt_tokens",
			Help:    "Prompt token count per model call",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
	)

	searchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of web searches by result source",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(toolCallsTotal)
	prometheus.MustRegister(toolRoundsExceededTotal)
	prometheus.MustRegister(promptTokens)
	prometheus.MustRegister(searchRequestsTotal)
}
