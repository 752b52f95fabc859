package idtheory

import "github.com/theory-cloud/idtheory/pkg/uuidgen"

// UUIDVersion selects the UUID algorithm for GenerateUUID.
type UUIDVersion int

const (
	UUIDv1 UUIDVersion = 1
	UUIDv4 UUIDVersion = 4
)

// Normalize maps unrecognized versions to UUIDv4.
func (v UUIDVersion) Normalize() UUIDVersion {
	if v == UUIDv1 {
		return UUIDv1
	}
	return UUIDv4
}

// UUIDGenerator produces canonical dashed UUID strings.
type UUIDGenerator interface {
	NewUUID(version UUIDVersion) (string, error)
}

// GoogleUUIDGenerator delegates to pkg/uuidgen.
type GoogleUUIDGenerator struct{}

func (GoogleUUIDGenerator) NewUUID(version UUIDVersion) (string, error) {
	return uuidgen.Generator{}.New(uuidgen.Version(version.Normalize()))
}
