// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FNQUERY.
//
//  FNQUERY is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FNQUERY is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FNQUERY.  If not, see <https://www.gnu.org/licenses/>.

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrameElement(t *testing.T) {
	fe, ok := ParseFrameElement("Attack@Assailant")
	assert.True(t, ok)
	assert.Equal(t, "Attack", fe.Frame)
	assert.Equal(t, "Assailant", fe.Role)
	assert.Equal(t, "Attack@Assailant", fe.String())
}

func TestParseFrameElementKeepsFirstSeparator(t *testing.T) {
	fe, ok := ParseFrameElement("Attack@Assailant@extra")
	assert.True(t, ok)
	assert.Equal(t, "Attack", fe.Frame)
	assert.Equal(t, "Assailant@extra", fe.Role)
}

func TestParseFrameElementInvalid(t *testing.T) {
	for _, entry := range []string{"", "Attack", "@Assailant", "Attack@", "@"} {
		_, ok := ParseFrameElement(entry)
		assert.False(t, ok, "entry: %s", entry)
	}
}
