package metrics

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/fixture-toolkit/pkg/config"
)

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar os comandos.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
}

// NoopProvider é um placeholder para quando métricas estão desabilitadas.
type NoopProvider struct{}

func (n *NoopProvider) Count(name string, value float64, tags []string) error { return nil }
func (n *NoopProvider) Gauge(name string, value float64, tags []string) error { return nil }

// DatadogProvider adapta a lib oficial do Datadog para nossa interface.
type DatadogProvider struct {
	client *statsd.Client
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

// Setup inicializa o provedor correto baseado no YAML.
func Setup(cfg config.MetricsConf) (Provider, error) {
	if !cfg.Datadog.Enabled {
		return &NoopProvider{}, nil
	}

	client, err := statsd.New(cfg.Datadog.Addr,
		statsd.WithNamespace(cfg.Datadog.Namespace),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no datadog statsd: %w", err)
	}
	return &DatadogProvider{client: client}, nil
}

// ReportLoad publica os contadores de uma carga concluída.
func ReportLoad(p Provider, sinkName string, rows, hashKeys, setKeys int) {
	tags := []string{"sink:" + sinkName}
	// Falha de métrica nunca derruba uma carga já concluída
	_ = p.Count("fixture.rows_loaded", float64(rows), tags)
	_ = p.Count("fixture.hash_keys", float64(hashKeys), tags)
	_ = p.Count("fixture.set_keys", float64(setKeys), tags)
}
