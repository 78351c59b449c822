package metrics

import (
	"io"
	"os"
	"strings"

	"github.com/Aurorachain/go-i256/log"
	"github.com/rcrowley/go-metrics"
)

const MetricsEnabledFlag = "metrics"

var Enabled = false

func init() {
	for _, arg := range os.Args {
		if flag := strings.TrimLeft(arg, "-"); flag == MetricsEnabledFlag {
			Enable()
		}
	}
}

func Enable() {
	if !Enabled {
		log.Debug("Enabling metrics collection")
	}
	Enabled = true
}

func NewCounter(name string) metrics.Counter {
	if !Enabled {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

func NewMeter(name string) metrics.Meter {
	if !Enabled {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

func NewTimer(name string) metrics.Timer {
	if !Enabled {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// Count returns the current value of a registered counter, or 0.
func Count(name string) int64 {
	if c, ok := metrics.DefaultRegistry.Get(name).(metrics.Counter); ok {
		return c.Count()
	}
	return 0
}

// Write dumps every registered metric to w in name order.
func Write(w io.Writer) {
	metrics.WriteOnce(metrics.DefaultRegistry, w)
}
