package compressing

import (
	"io"
	"testing"

	fixtures "github.com/go-git/go-git-fixtures/v4"
	"github.com/stretchr/testify/require"
)

// fixture returns the content of a real pack index file.
func fixture(t testing.TB) []byte {
	f := fixtures.Basic().One().Idx()
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	return content
}
