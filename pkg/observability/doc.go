/*
Package observability provides Prometheus metrics for edmcheck runs.

Metrics live on a private registry so several runners (or tests) never collide
on the global default registry. The same registry backs the /metrics endpoint of
the serve command and the node_exporter textfile written by --metrics-file.
*/
package observability
