// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/strongboxvm/strongbox/codec"
)

// UnmarshalFunc decodes the borsh argument payload of one opcode.
type UnmarshalFunc func(data []byte) (Instruction, error)

// Registry is the closed opcode table of a program. The instruction
// set is fixed at startup, so dispatch is exhaustively checkable: the
// only unhandled-opcode path is the explicit lookup miss.
type Registry struct {
	decoders map[uint8]UnmarshalFunc
}

func NewRegistry() *Registry {
	return &Registry{decoders: map[uint8]UnmarshalFunc{}}
}

func (r *Registry) Register(typeID uint8, f UnmarshalFunc) error {
	if _, ok := r.decoders[typeID]; ok {
		return fmt.Errorf("%w: typeID %d", ErrDuplicateItem, typeID)
	}
	r.decoders[typeID] = f
	return nil
}

func (r *Registry) LookupIndex(typeID uint8) (UnmarshalFunc, bool) {
	f, ok := r.decoders[typeID]
	return f, ok
}

// Unmarshal returns the UnmarshalFunc for a concrete instruction type,
// deserializing its borsh payload strictly (trailing bytes rejected).
func Unmarshal[T any, PT interface {
	*T
	Instruction
}]() UnmarshalFunc {
	return func(data []byte) (Instruction, error) {
		t, err := codec.Deserialize[T](data)
		if err != nil {
			return nil, err
		}
		return PT(t), nil
	}
}
