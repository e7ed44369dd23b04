package fakeapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskflow_fakeapi_requests_total",
			Help: "Requests served by the fake backend",
		},
		[]string{"method", "route", "status"},
	)
	injectedFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskflow_fakeapi_injected_failures_total",
			Help: "Requests answered with an injected failure",
		},
		[]string{"method", "route"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(injectedFailures)
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
