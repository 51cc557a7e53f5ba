package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gowebpki/jcs"
)

// JCS defines an interface for JCS operations to enable mocking
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS,Hasher=MockHasher
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

// RealJCS implements JCS using the gowebpki jcs package
type RealJCS struct{}

// NewJCS creates a new real JCS implementation
func NewJCS() JCS {
	return &RealJCS{}
}

func (j *RealJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

// Hasher computes content hashes over canonical JSON
type Hasher interface {
	// ContentHash returns the 0x-prefixed keccak256 of the JCS form of v
	ContentHash(v any) (string, error)
}

// KeccakHasher hashes RFC 8785 canonical JSON with keccak256
type KeccakHasher struct {
	jcs JCS
}

// NewHasher creates a new keccak hasher
func NewHasher(j JCS) Hasher {
	return &KeccakHasher{jcs: j}
}

func (h *KeccakHasher) ContentHash(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal content: %w", err)
	}

	canonical, err := h.jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize content: %w", err)
	}

	return crypto.Keccak256Hash(canonical).Hex(), nil
}
