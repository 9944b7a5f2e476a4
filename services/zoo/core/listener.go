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
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/events"
	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/log"
	"github.com/mitchellh/mapstructure"
)

// ReportListener logs dispatch events.
type ReportListener struct {
	logger log.Logger
}

func NewReportListener(logger log.Logger) *ReportListener {
	return &ReportListener{
		logger: logger,
	}
}

func (l *ReportListener) Handle(e events.Event) error {
	var report Report
	if err := mapstructure.Decode(e.Data(), &report); err != nil {
		l.logger.Errorf("could not decode %s event: %s", e.Name(), err.Error())
		return err
	}

	if !report.Handled {
		l.logger.Infof("request %s (%s) was left untouched by the %s sub-chain", report.ID, report.Request, report.Entry)
		return nil
	}

	l.logger.Debugf("request %s (%s) was handled by %s: %s", report.ID, report.Request, report.HandledBy, report.Reply)
	return nil
}

// Subscribe registers the listener for every dispatch outcome.
func (l *ReportListener) Subscribe(emitter events.Emitter) {
	emitter.On(EventHandled, l)
	emitter.On(EventUnhandled, l)
}
