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
	"fmt"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// CorporaSetup defines a root configuration of annotation corpora
type CorporaSetup struct {

	// DataDir is a directory containing one annotation JSON file
	// per document (plus, typically, the structured data file).
	DataDir string `json:"dataDir"`

	// StructuredDataPath overrides the default location of the
	// entity lookup file (<dataDir>/structured_data.json).
	StructuredDataPath string `json:"structuredDataPath"`
}

func (cs *CorporaSetup) GetStructuredDataPath() string {
	if cs.StructuredDataPath != "" {
		return cs.StructuredDataPath
	}
	return filepath.Join(cs.DataDir, StructuredDataFile)
}

func (cs *CorporaSetup) ValidateAndDefaults(confContext string) error {
	if cs == nil {
		return fmt.Errorf("missing `%s` section", confContext)
	}
	if cs.DataDir == "" {
		return fmt.Errorf("missing `%s.dataDir`", confContext)
	}
	isDir, err := fs.IsDir(cs.DataDir)
	if err != nil {
		return fmt.Errorf("failed to test `%s.dataDir`: %w", confContext, err)
	}
	if !isDir {
		return fmt.Errorf("`%s.dataDir` is not a directory: %s", confContext, cs.DataDir)
	}
	if cs.StructuredDataPath == "" {
		log.Warn().
			Str("path", cs.GetStructuredDataPath()).
			Msgf("`%s.structuredDataPath` not specified, using default", confContext)
	}
	return nil
}
