package metrics

import (
	"testing"

	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockProvider para verificar chamadas
type MockProvider struct {
	counts map[string]float64
	tags   map[string][]string
}

func newMockProvider() *MockProvider {
	return &MockProvider{counts: make(map[string]float64), tags: make(map[string][]string)}
}

func (m *MockProvider) Count(name string, value float64, tags []string) error {
	m.counts[name] += value
	m.tags[name] = tags
	return nil
}

func (m *MockProvider) Gauge(name string, value float64, tags []string) error {
	m.counts[name] = value
	return nil
}

func TestSetup_DesabilitadoRetornaNoop(t *testing.T) {
	p, err := Setup(config.MetricsConf{})
	require.NoError(t, err)
	assert.IsType(t, &NoopProvider{}, p)

	// Noop nunca falha
	assert.NoError(t, p.Count("x", 1, nil))
	assert.NoError(t, p.Gauge("x", 1, nil))
}

func TestReportLoad(t *testing.T) {
	mock := newMockProvider()
	ReportLoad(mock, "redis", 10, 4, 2)

	assert.Equal(t, 10.0, mock.counts["fixture.rows_loaded"])
	assert.Equal(t, 4.0, mock.counts["fixture.hash_keys"])
	assert.Equal(t, 2.0, mock.counts["fixture.set_keys"])
	assert.Equal(t, []string{"sink:redis"}, mock.tags["fixture.rows_loaded"])
}
