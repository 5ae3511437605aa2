package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("txt"))
	assert.False(t, AllowedExt("docx"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.cache"))
	assert.True(t, IsHidden(".env"))
	assert.False(t, IsHidden("/tmp/contract.pdf"))
}
