/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package pkg

import (
	"context"
	"os"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/metrics"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/trace"
	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type option func(*options)

type options struct {
	invokables []interface{}
	modules    []interface{}
}

func newOptions(opts ...option) options {
	opt := options{}
	for _, o := range opts {
		o(&opt)
	}

	return opt
}

func WithInvokables(val ...interface{}) option {
	return func(o *options) {
		o.invokables = val
	}
}

func WithModules(val ...interface{}) option {
	return func(o *options) {
		o.modules = val
	}
}

type bootstrapper struct {
	path       string
	invokables []interface{}
	modules    []interface{}
}

func NewBootstrapper(path string, opts ...option) bootstrapper {
	options := newOptions(opts...)
	return bootstrapper{
		path:       path,
		invokables: options.invokables,
		modules:    options.modules,
	}
}

// Bootstrap wires the shared infrastructure, the given modules and invokables
// into an fx application. Configuration errors are reported through app.Err().
func (b bootstrapper) Bootstrap() *fx.App {
	builder := config.BuildNewServerConfig(b.path)

	var logger fx.Option = fx.NopLogger
	if sconf, err := builder(); err == nil && sconf.Debug {
		logger = fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		})
	}

	return fx.New(
		fx.Provide(builder),
		fx.Provide(config.BuildNewLoggerConfig(b.path)),
		fx.Provide(config.BuildNewTracerConfig(b.path)),
		fx.Provide(log.NewLogrusLogger),
		fx.Provide(trace.NewTracer),
		fx.Provide(func(provider *sdktrace.TracerProvider) oteltrace.TracerProvider {
			return provider
		}),
		fx.Provide(metrics.NewRegistry),
		fx.Provide(func(registry *prometheus.Registry) prometheus.Registerer {
			return registry
		}),
		fx.Provide(metrics.NewDispatchMetrics),
		fx.Provide(events.NewEmitter),
		fx.Provide(b.modules...),
		fx.Invoke(b.invokables...),
		fx.Invoke(func(lifecycle fx.Lifecycle, provider *sdktrace.TracerProvider, logger log.Logger) {
			lifecycle.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					logger.Debug("flushing tracer provider")
					return provider.Shutdown(ctx)
				},
			})
		}),
		logger,
	)
}
