// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validators

import (
	"testing"

	"github.com/bytecodealliance/wasmtime-go/v25"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/wasm-schedule/x/contracts/runtime"
)

func TestFloatingPointValidator(t *testing.T) {
	tests := []struct {
		name    string
		wat     string
		wantErr bool
	}{
		{
			name: "integer signature",
			wat:  `(module (func (export "test") (param i32 i64) (result i64) local.get 1))`,
		},
		{
			name: "floats in private function",
			wat: `(module
				(func $f (result f64) f64.const 1)
				(func (export "test") (result i32) i32.const 0)
			)`,
		},
		{
			name:    "float result",
			wat:     `(module (func (export "test") (result f32) f32.const 1))`,
			wantErr: true,
		},
		{
			name:    "float parameter",
			wat:     `(module (func (export "test") (param f64)))`,
			wantErr: true,
		},
		{
			name:    "float in import",
			wat:     `(module (import "env" "sqrt" (func (param f64) (result f64))))`,
			wantErr: true,
		},
	}

	engine := wasmtime.NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wasm := compile(t, tt.wat)
			err := runtime.ValidateModule(engine, wasm, NewFloatingPointValidator())
			if tt.wantErr {
				require.ErrorIs(t, err, runtime.ErrInvalidModule)
				var valErr *runtime.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, RuleFloatingPoint, valErr.Rule)
				return
			}
			require.NoError(t, err)
		})
	}
}
