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
	"encoding/json"
	"fmt"
	"os"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	// StructuredDataFile is the auxiliary per-corpus lookup file
	// mapping entity ids to their structured attributes.
	StructuredDataFile = "structured_data.json"

	entityLabelAttr = "sem:incidentID"
)

// EntityDirectory resolves structured-data entity identifiers
// to human readable attributes. It is a pure lookup collaborator -
// none of the aggregations depends on it and a missing entity id
// is a regular "no label available" answer.
type EntityDirectory struct {
	data map[string]map[string]any
}

// Attrs returns all recorded attributes of an entity. The false
// return value reports a lookup miss.
func (ed *EntityDirectory) Attrs(entityID string) (map[string]any, bool) {
	v, ok := ed.data[entityID]
	return v, ok
}

// Label returns a human readable label of an entity or an empty
// string in case the entity (or its label attribute) is unknown.
func (ed *EntityDirectory) Label(entityID string) string {
	attrs, ok := ed.data[entityID]
	if !ok {
		return ""
	}
	if v, ok := attrs[entityLabelAttr].(string); ok {
		return v
	}
	return ""
}

func (ed *EntityDirectory) Size() int {
	return len(ed.data)
}

// LoadEntityDirectory reads the structured-data file. A missing
// file is not an error - entity labels are auxiliary and FNQuery
// just reports "no label" for everything in such case.
func LoadEntityDirectory(path string) (*EntityDirectory, error) {
	ans := &EntityDirectory{data: make(map[string]map[string]any)}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test structured data file: %w", err)
	}
	if !isFile {
		log.Warn().
			Str("path", path).
			Msg("structured data file not found, entity labels will be unavailable")
		return ans, nil
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read structured data file: %w", err)
	}
	if err := json.Unmarshal(rawData, &ans.data); err != nil {
		return nil, fmt.Errorf("failed to parse structured data file: %w", err)
	}
	return ans, nil
}
