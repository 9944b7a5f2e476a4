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
	"io"
	"strings"

	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/core"
)

func run(ctx context.Context, w io.Writer, dispatcher *core.Dispatcher, entries, requests []string) error {
	full := len(dispatcher.Route())
	for i, entry := range entries {
		d, err := dispatcher.From(entry)
		if err != nil {
			return err
		}

		reports, err := d.DispatchAll(ctx, requests)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		render(w, d.Route(), len(d.Route()) < full, reports)
	}

	return nil
}

func render(w io.Writer, route []string, sub bool, reports []core.Report) {
	label := "Chain"
	if sub {
		label = "Subchain"
	}

	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(route, " > "))
	for _, r := range reports {
		fmt.Fprintf(w, "\nClient: Who wants a %s?\n", r.Request)
		if r.Handled {
			fmt.Fprintf(w, " %s\n", r.Reply)
			continue
		}
		fmt.Fprintf(w, " %s was left untouched\n", r.Request)
	}
}
