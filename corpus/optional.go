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
	"bytes"
	"encoding/json"
)

var (
	jsonNull = []byte("null")
)

// Opt is a tri-state optional used for the annotation attributes:
// an attribute may be absent from a token object, present with
// an explicit null, or present with a value. The distinction is
// preserved on re-encoding (via the `omitzero` tag - an absent
// attribute stays absent, a null one stays null).
type Opt[T any] struct {
	value  T
	isSet  bool
	isNull bool
}

// Value returns the stored value and true in case the attribute
// was present and non-null.
func (o Opt[T]) Value() (T, bool) {
	return o.value, o.isSet && !o.isNull
}

// IsDefined reports whether the attribute occurred in the source
// data at all (even as an explicit null).
func (o Opt[T]) IsDefined() bool {
	return o.isSet
}

// IsZero makes an absent attribute eligible for `omitzero`.
func (o Opt[T]) IsZero() bool {
	return !o.isSet
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.isNull {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.isSet = true
	if bytes.Equal(data, jsonNull) {
		o.isNull = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

func NewOpt[T any](v T) Opt[T] {
	return Opt[T]{value: v, isSet: true}
}

func NullOpt[T any]() Opt[T] {
	return Opt[T]{isSet: true, isNull: true}
}
