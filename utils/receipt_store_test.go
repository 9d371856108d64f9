package utils

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalReceiptStore(t *testing.T) {
	store := &LocalReceiptStore{Dir: t.TempDir()}
	ctx := context.Background()

	loc, err := store.Save(ctx, "../escape/HR-0001.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Delete(ctx, loc))
	_, err = os.Stat(loc)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, loc), "deleting twice is fine")
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/HR-0001%20a.pdf", publicURL("https://cdn.example/", "HR-0001 a.pdf"))
}
