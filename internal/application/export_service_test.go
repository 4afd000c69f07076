package application_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportStub(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	pdf, err := e.export.ExportPDF(ctx, "2")
	require.NoError(t, err)
	assert.True(t, pdf.Success)
	assert.True(t, strings.HasPrefix(pdf.Filename, "family-business-charter-"))
	assert.True(t, strings.HasSuffix(pdf.Filename, ".pdf"))

	word, err := e.export.ExportWord(ctx, "2")
	require.NoError(t, err)
	assert.True(t, word.Success)
	assert.True(t, strings.HasSuffix(word.Filename, ".docx"))
}
