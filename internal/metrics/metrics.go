package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "startupradar"

const (
	MetricRowsParsed       = "ingest_rows_parsed_total"
	MetricRowsSkipped      = "ingest_rows_skipped_total"
	MetricLoads            = "ingest_loads_total"
	MetricLoadDuration     = "ingest_load_duration_seconds"
	MetricHTTPRequests     = "http_requests_total"
	MetricHTTPDuration     = "http_request_duration_seconds"
	MetricDatasetEntities  = "dataset_entities"
	MetricSingleflightJoin = "cache_shared_loads_total"
)

var RowsParsed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      MetricRowsParsed,
		Help:      "Data rows produced by the row parser.",
	},
)

var RowsSkipped = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      MetricRowsSkipped,
		Help:      "Rows dropped or defaulted, by pipeline stage and reason.",
	},
	[]string{"stage", "reason"},
)

var Loads = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      MetricLoads,
		Help:      "Dataset loads, by result (ok, empty, source_error).",
	},
	[]string{"result"},
)

var LoadDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      MetricLoadDuration,
		Help:      "Time spent reading and ingesting the source.",
		Buckets:   prometheus.DefBuckets,
	},
)

var DatasetEntities = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      MetricDatasetEntities,
		Help:      "Entities in the cached dataset, by kind.",
	},
	[]string{"kind"},
)

var SharedLoads = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      MetricSingleflightJoin,
		Help:      "Dataset requests answered by a load shared with other callers.",
	},
)

var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      MetricHTTPRequests,
		Help:      "HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      MetricHTTPDuration,
		Help:      "HTTP request latency, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

func init() {
	prometheus.MustRegister(RowsParsed)
	prometheus.MustRegister(RowsSkipped)
	prometheus.MustRegister(Loads)
	prometheus.MustRegister(LoadDuration)
	prometheus.MustRegister(DatasetEntities)
	prometheus.MustRegister(SharedLoads)
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(HTTPDuration)
}
