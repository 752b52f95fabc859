// Package uuidgen produces canonical dashed UUID strings using github.com/google/uuid.
package uuidgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Version selects the UUID algorithm. Unrecognized versions fall back to V4.
type Version int

const (
	V1 Version = 1
	V4 Version = 4
)

// Generator produces time-based (v1) or random (v4) UUIDs.
type Generator struct{}

// New returns a canonical lower-case UUID string of the requested version.
func (Generator) New(version Version) (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	switch version {
	case V1:
		id, err = uuid.NewUUID()
	default:
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return "", fmt.Errorf("uuidgen: generate v%d: %w", normalize(version), err)
	}
	return id.String(), nil
}

func normalize(version Version) Version {
	if version == V1 {
		return V1
	}
	return V4
}
