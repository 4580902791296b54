package store

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdRoundTrip(t *testing.T) {
	doc := bytes.Repeat([]byte(`{"rooms":{"W1N1":"AAECAw=="}}`), 64)
	packed := compressZstd(doc)
	assert.Less(t, len(packed), len(doc))
	out, err := decompressZstd(packed)
	require.NoError(t, err)
	assert.Equal(t, doc, out)

	out, err = decompressZstd(compressZstd(nil))
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = decompressZstd([]byte("not zstd"))
	assert.Error(t, err)
}

func TestZstdConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc := bytes.Repeat([]byte{byte(i)}, 4096)
			out, err := decompressZstd(compressZstd(doc))
			assert.NoError(t, err)
			assert.Equal(t, doc, out)
		}(i)
	}
	wg.Wait()
}
