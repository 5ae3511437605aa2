package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "txt", NormalizeExt("txt"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, TXT, MapExtToFormat("TXT"))
	assert.Equal(t, "", MapExtToFormat(".docx"))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range JobStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("running"))
	assert.False(t, IsValidStatus(""))
}
