package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Summarize flattens every counter in g into "name{label=value}" keys.
func Summarize(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	summary := map[string]float64{}
	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}

		for _, m := range family.GetMetric() {
			summary[seriesName(family.GetName(), m.GetLabel())] = m.GetCounter().GetValue()
		}
	}

	return summary, nil
}

func seriesName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}

	pairs := make([]string, 0, len(labels))
	for _, l := range labels {
		pairs = append(pairs, l.GetName()+"="+l.GetValue())
	}
	sort.Strings(pairs)

	return name + "{" + strings.Join(pairs, ",") + "}"
}
