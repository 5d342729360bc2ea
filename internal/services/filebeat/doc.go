// Package filebeat exposes the Filebeat forwarder as configuration objects
// and command-line targets: the downstream delivery targets (Elasticsearch,
// Logstash, Kafka) as mutable field bags with enabled gates, and a log
// search manager reached through a single-responsibility interface.
package filebeat
