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

import "strings"

// FrameElement is a parsed `Frame@Role` annotation entry.
type FrameElement struct {
	Frame string `json:"frame"`
	Role  string `json:"role"`
}

func (fe FrameElement) String() string {
	return fe.Frame + "@" + fe.Role
}

// ParseFrameElement splits a `Frame@Role` entry. Entries without
// the separator or with an empty half are reported as invalid.
func ParseFrameElement(entry string) (FrameElement, bool) {
	frame, role, ok := strings.Cut(entry, "@")
	if !ok || frame == "" || role == "" {
		return FrameElement{}, false
	}
	return FrameElement{Frame: frame, Role: role}, true
}
