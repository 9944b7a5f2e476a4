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

package trace

import (
	"errors"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

type TracerType int

var (
	Default TracerType = 0
	Zipkin  TracerType = 1
)

var ErrTracerInvalidAddressInitialization = errors.New("could not initialize a zipkin tracer without an address")

// NewTracer initializes a new tracer provider.
// A disabled tracer still returns a provider, it just never exports spans.
func NewTracer(config *config.TracerConfig) (*trace.TracerProvider, error) {
	if config.Tracer.Name == "" {
		config.Tracer.Name = "default-tracer"
	}

	opts := []trace.TracerProviderOption{
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(config.Tracer.FractionRatio))),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.Tracer.Name),
		)),
	}

	if config.Tracer.Enable {
		exporter, err := newExporter(config)
		if err != nil {
			return nil, err
		}
		opts = append(opts, trace.WithBatcher(exporter))
	}

	provider := trace.NewTracerProvider(opts...)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return provider, nil
}

func newExporter(config *config.TracerConfig) (trace.SpanExporter, error) {
	switch TracerType(config.Tracer.TracerType) {
	case Zipkin:
		if config.Tracer.Address == "" {
			return nil, ErrTracerInvalidAddressInitialization
		}
		return NewZipkinExporter(config.Tracer.Address)
	default:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
}
