// Package metrics 定义服务暴露的 Prometheus 指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCount 按方法、路由和状态码统计请求数
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samvaad_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "samvaad_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "route"},
	)

	// ChatTurns 按情绪和回复规则统计对话轮次，未知情绪记为 other
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samvaad_chat_turns_total",
			Help: "Chat turns by detected emotion and the rule that produced the reply",
		},
		[]string{"emotion", "rule"},
	)

	ClassifierLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "samvaad_classifier_latency_seconds",
			Help: "Emotion classifier latency in seconds",
		},
	)

	// ClassifierFallbacks 统计退回 neutral 的分类次数
	ClassifierFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samvaad_classifier_fallbacks_total",
			Help: "Classifications that degraded to neutral",
		},
		[]string{"backend", "reason"},
	)

	ActiveConversations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "samvaad_active_conversations",
			Help: "Number of conversations held in memory",
		},
	)

	ExpiredConversations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "samvaad_expired_conversations_total",
			Help: "Conversations dropped after going idle",
		},
	)
)
