package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("SMP_1002", "invalid vCPU value", nil),
			wantErr: NewInvalidArgumentError("SMP_1002", "invalid vCPU value", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ING_9000", nil)),
			wantErr: NewInternalError("ING_9000", nil),
			wantOk:  true,
		},
		{
			name:    "precondition ServiceError",
			err:     NewPreconditionFailedError("APP_1001", "output directory should be empty", nil),
			wantErr: NewPreconditionFailedError("APP_1001", "output directory should be empty", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := NewInternalError("RPT_9000", cause)

	assert.Equal(t, "RPT_9000: internal error: disk gone", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.IsInternalError())
	assert.False(t, err.IsInvalidArgument())

	noCause := NewInvalidArgumentError("SMP_1000", "wrong ProductId", nil)
	assert.Equal(t, "SMP_1000: wrong ProductId", noCause.Error())
	assert.True(t, noCause.IsInvalidArgument())
}
