package insights

import (
	"encoding/json"
	"os"

	errors "github.com/Laisky/errors/v2"
)

// Metric group names recognized in the metric-group configuration file.
const (
	GroupIORate          = "io_metrics"
	GroupDataRate        = "data_rate_metrics"
	GroupTransferSize    = "transfer_size_metrics"
	GroupResponseTime    = "response_time_metrics"
	GroupCPUUtilization  = "cpu_utilization_metrics"
	GroupCapacity        = "capacity_metrics"
	GroupCacheEfficiency = "cache_efficiency_metrics"
	GroupDiskLatency     = "disk_latency_metrics"
)

// MetricGroups maps group names to upstream metric type names. The groups
// only provide default values for the metric tools' `types` parameter.
type MetricGroups struct {
	groups map[string][]string
}

type metricEntry struct {
	Name string `json:"name"`
}

// LoadMetricGroups reads the metric-group configuration file, a JSON object
// of the form {"group_name": [{"name": "..."}, ...], ...}.
func LoadMetricGroups(path string) (*MetricGroups, error) {
	cnt, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read metric groups file `%s`", path)
	}

	var raw map[string][]metricEntry
	if err = json.Unmarshal(cnt, &raw); err != nil {
		return nil, errors.Wrapf(err, "decode metric groups file `%s`", path)
	}

	groups := make(map[string][]string, len(raw))
	for name, entries := range raw {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.Name != "" {
				names = append(names, entry.Name)
			}
		}
		groups[name] = names
	}

	return &MetricGroups{groups: groups}, nil
}

// EmptyMetricGroups returns a group set with no entries; metric tools fall
// back to requiring explicit `types` arguments.
func EmptyMetricGroups() *MetricGroups {
	return &MetricGroups{groups: map[string][]string{}}
}

// Names returns the metric names of a group, or an empty slice when the
// group is not configured.
func (g *MetricGroups) Names(group string) []string {
	names := g.groups[group]
	out := make([]string, len(names))
	copy(out, names)

	return out
}
