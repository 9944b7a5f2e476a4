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

package core

import (
	"context"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/chain"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/metrics"
	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/shared"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	EventHandled   = "chain.handled"
	EventUnhandled = "chain.unhandled"
)

// Report describes the outcome of one dispatched request.
type Report struct {
	ID        string `mapstructure:"id"`
	Entry     string `mapstructure:"entry"`
	Request   string `mapstructure:"request"`
	HandledBy string `mapstructure:"handled_by"`
	Reply     string `mapstructure:"reply"`
	Handled   bool   `mapstructure:"handled"`
}

func (r Report) payload() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"entry":      r.Entry,
		"request":    r.Request,
		"handled_by": r.HandledBy,
		"reply":      r.Reply,
		"handled":    r.Handled,
	}
}

// Dispatcher feeds requests into a zoo chain starting at a fixed entry handler.
// The chain must not be relinked while a dispatcher is in use.
type Dispatcher struct {
	zoo     *Zoo
	entry   *chain.Handler[string, string]
	workers int
	tracer  trace.Tracer
	metrics *metrics.DispatchMetrics
	emitter events.Emitter
	logger  log.Logger
}

// NewDispatcher creates a dispatcher entering the zoo at its head.
// At least one worker is used regardless of the configured bound.
func NewDispatcher(
	zoo *Zoo, config *shared.ZooConfig, provider trace.TracerProvider,
	metrics *metrics.DispatchMetrics, emitter events.Emitter, logger log.Logger,
) *Dispatcher {
	return &Dispatcher{
		zoo:     zoo,
		entry:   zoo.Head(),
		workers: max(config.Zoo.Workers, 1),
		tracer:  provider.Tracer("github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/core"),
		metrics: metrics,
		emitter: emitter,
		logger:  logger,
	}
}

// From returns a dispatcher sharing the same chain whose entry point is the
// named handler. Handlers linked before it are never consulted.
func (d *Dispatcher) From(name string) (*Dispatcher, error) {
	entry, err := d.zoo.Entry(name)
	if err != nil {
		return nil, err
	}

	sub := *d
	sub.entry = entry
	return &sub, nil
}

// Route lists the handler names the dispatcher walks, in order.
func (d *Dispatcher) Route() []string {
	return d.entry.Names()
}

// Dispatch delivers a single request to the chain.
func (d *Dispatcher) Dispatch(ctx context.Context, request string) Report {
	report := Report{
		ID:      uuid.NewString(),
		Entry:   d.entry.Name(),
		Request: request,
	}

	_, span := d.tracer.Start(ctx, "chain.dispatch", trace.WithAttributes(
		attribute.String("chain.request_id", report.ID),
		attribute.String("chain.entry", report.Entry),
		attribute.String("chain.request", request),
	))
	defer span.End()

	start := time.Now()
	res := d.entry.Handle(request)
	d.metrics.Observe(res.By(), res.IsHandled(), time.Since(start))

	report.Reply, report.Handled = res.Value()
	report.HandledBy = res.By()
	span.SetAttributes(attribute.Bool("chain.handled", report.Handled))

	name := EventUnhandled
	if report.Handled {
		name = EventHandled
		span.SetAttributes(attribute.String("chain.handler", report.HandledBy))
	}

	if err := d.emitter.Fire(name, report.payload()); err != nil {
		span.SetStatus(codes.Error, err.Error())
		d.logger.Warnf("could not notify %s listeners of request %s: %s", name, report.ID, err.Error())
	}

	return report
}

// DispatchAll delivers requests concurrently and returns the reports in
// request order. It stops early when ctx is done.
func (d *Dispatcher) DispatchAll(ctx context.Context, requests []string) ([]Report, error) {
	reports := make([]Report, len(requests))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			reports[i] = d.Dispatch(gCtx, request)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
