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

package main

import (
	"os"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/config"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/log"
	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:     "patterns",
		Usage:    "delegation chain playground",
		Commands: []*cli.Command{cmd.Dispatch()},
	}

	if err := app.Run(os.Args); err != nil {
		var conf config.LoggerConfig
		conf.Logger.Name = app.Name
		conf.Logger.Level = int(log.LEVEL_FATAL)
		log.NewDefaultLogger(&conf).Fatal(err.Error())
	}
}
