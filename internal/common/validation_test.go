package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator()
	v.Field("filename", "  ", Required)
	assert.True(t, v.HasErrors())
	assert.Contains(t, v.ErrorMessage(), "filename")

	v = NewValidator()
	v.Field("filename", "contract.pdf", Required)
	assert.False(t, v.HasErrors())
}

func TestValidatorMaxLength(t *testing.T) {
	v := NewValidator()
	v.Field("filename", "contract.pdf", MaxLength(5))
	assert.True(t, v.HasErrors())

	v = NewValidator()
	v.Field("filename", "a.txt", MaxLength(5))
	assert.False(t, v.HasErrors())
}

func TestValidatorUUID(t *testing.T) {
	v := NewValidator()
	v.Field("file_id", "not-a-uuid", UUID)
	assert.True(t, v.HasErrors())

	v = NewValidator()
	v.Field("file_id", "3e1f6a37-6f9d-4a5e-9d58-25ab1d5e73bb", UUID)
	assert.False(t, v.HasErrors())
}

func TestValidateAndReturnError(t *testing.T) {
	v := NewValidator()
	v.Field("filename", "", Required)
	err := ValidateAndReturnError(v)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	assert.NoError(t, ValidateAndReturnError(NewValidator()))
}

func TestAppErrorFormatting(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGRPCErrorHelpers(t *testing.T) {
	assert.Equal(t, codes.NotFound, status.Code(NotFoundError("gone")))
	assert.Equal(t, codes.Internal, status.Code(InternalErrorf("boom: %d", 7)))
	assert.Equal(t, codes.InvalidArgument, status.Code(InvalidArgumentErrorf("bad %s", "input")))
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
