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

package chain

// Equals accepts requests equal to one of values.
func Equals[Req comparable](values ...Req) Rule[Req] {
	accepted := make(map[Req]struct{}, len(values))
	for _, v := range values {
		accepted[v] = struct{}{}
	}

	return func(request Req) bool {
		_, ok := accepted[request]
		return ok
	}
}

// AnyOf accepts a request when at least one of rules does.
func AnyOf[Req any](rules ...Rule[Req]) Rule[Req] {
	return func(request Req) bool {
		for _, rule := range rules {
			if rule != nil && rule(request) {
				return true
			}
		}

		return false
	}
}

// Not inverts rule. A nil rule is treated as rejecting everything.
func Not[Req any](rule Rule[Req]) Rule[Req] {
	return func(request Req) bool {
		return rule == nil || !rule(request)
	}
}
