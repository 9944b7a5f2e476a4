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
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/chain"
	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZoo(t *testing.T) {
	var conf shared.ZooConfig
	conf.Zoo.Handlers = []shared.HandlerConfig{
		{Name: "Cat", Accepts: []string{"Fish", "Milk"}, Reply: "Cat: {request}? {request}!"},
		{Name: "Owl", Accepts: []string{"Mouse"}},
	}

	zoo, err := NewZoo(&conf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Owl"}, zoo.Head().Names())

	value, ok := zoo.Head().Handle("Milk").Value()
	assert.True(t, ok)
	assert.Equal(t, "Cat: Milk? Milk!", value)

	res := zoo.Head().Handle("Mouse")
	value, ok = res.Value()
	assert.True(t, ok)
	assert.Equal(t, "Owl", res.By())
	assert.Empty(t, value)

	owl, err := zoo.Entry("Owl")
	require.NoError(t, err)
	assert.False(t, owl.Handle("Fish").IsHandled())

	_, err = zoo.Entry("Dog")
	assert.Error(t, err)

	_, err = NewZoo(&shared.ZooConfig{})
	assert.ErrorIs(t, err, chain.ErrEmptyChain)
}
