package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftfile/cli/pkg/containerfile"
)

func TestWriteErrorReport(t *testing.T) {
	var sb strings.Builder
	WriteErrorReport(&sb, containerfile.Errors{
		{Field: "instructions[0].image", Message: "must not be empty", Value: ""},
		{Field: "instructions[2].port", Message: "must be an integer between 0 and 65535", Value: 70000},
	})

	out := sb.String()
	assert.Contains(t, out, "2 validation errors:")
	assert.Contains(t, out, "instructions[0].image")
	assert.Contains(t, out, "must not be empty")
	assert.Contains(t, out, "must be an integer between 0 and 65535")
}

func TestWriteErrorReport_SingularHeadline(t *testing.T) {
	var sb strings.Builder
	WriteErrorReport(&sb, containerfile.Errors{
		{Field: "image", Message: "must not be empty", Value: ""},
	})

	assert.Contains(t, sb.String(), "1 validation error:")
}

func TestWriteErrorReport_StringValueShown(t *testing.T) {
	var sb strings.Builder
	WriteErrorReport(&sb, containerfile.Errors{
		{Field: "image", Message: "must be a valid image reference", Value: "My Image"},
	})

	assert.Contains(t, sb.String(), `"My Image"`)
}
