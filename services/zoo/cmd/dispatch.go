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

package cmd

import (
	"context"
	"fmt"

	pkg "github.com/ONLYOFFICE/onlyoffice-patterns/pkg"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/metrics"
	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/core"
	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/shared"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func Dispatch() *cli.Command {
	return &cli.Command{
		Name:     "dispatch",
		Usage:    "feeds requests into the zoo chain and its sub-chains",
		Category: "zoo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config_path",
				Usage:   "sets custom configuration path",
				Aliases: []string{"config", "conf", "c"},
			},
			&cli.StringSliceFlag{
				Name:    "entry",
				Usage:   "handler to start dispatching from, repeatable",
				Aliases: []string{"e"},
			},
			&cli.StringSliceFlag{
				Name:    "request",
				Usage:   "request to dispatch, repeatable",
				Aliases: []string{"r"},
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "prints dispatch metrics after the run",
			},
		},
		Action: func(c *cli.Context) error {
			var (
				CONFIG_PATH = c.String("config_path")
				dispatcher  *core.Dispatcher
				zoo         *shared.ZooConfig
				registry    *prometheus.Registry
			)

			app := pkg.NewBootstrapper(
				CONFIG_PATH, pkg.WithModules(
					shared.BuildNewZooConfig(CONFIG_PATH),
					core.NewZoo, core.NewDispatcher, core.NewReportListener,
				), pkg.WithInvokables(
					func(l *core.ReportListener, e events.Emitter) {
						l.Subscribe(e)
					},
					func(d *core.Dispatcher, z *shared.ZooConfig, r *prometheus.Registry) {
						dispatcher, zoo, registry = d, z, r
					},
				),
			).Bootstrap()

			if err := app.Err(); err != nil {
				return err
			}

			ctx := c.Context
			if ctx == nil {
				ctx = context.Background()
			}

			if err := app.Start(ctx); err != nil {
				return err
			}

			entries := zoo.Zoo.Entries
			if c.IsSet("entry") {
				entries = c.StringSlice("entry")
			}

			requests := zoo.Zoo.Requests
			if c.IsSet("request") {
				requests = c.StringSlice("request")
			}

			runErr := run(ctx, c.App.Writer, dispatcher, entries, requests)
			if runErr == nil && c.Bool("metrics") {
				fmt.Fprintln(c.App.Writer)
				runErr = metrics.Write(c.App.Writer, registry)
			}

			if err := app.Stop(context.Background()); err != nil && runErr == nil {
				return err
			}

			return runErr
		},
	}
}
