// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

// ErrVersionMismatch is returned when decoding a record written with other versions.
var ErrVersionMismatch = errors.New("store: record version mismatch")

// EncodeRun serializes a run record.
func EncodeRun(rec RunRecord) ([]byte, error) {
	return json.Marshal(rec)
}

// DecodeRun parses a run record and checks its versions.
func DecodeRun(data []byte) (RunRecord, error) {
	var rec RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return RunRecord{}, err
	}
	if err := checkVersion(rec.VersionedRecord); err != nil {
		return RunRecord{}, err
	}
	return rec, nil
}

func checkVersion(v VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, v.SchemaVersion, v.CodecVersion)
	}
	return nil
}
