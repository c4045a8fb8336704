package middle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestMiddleFileWithExtension(t *testing.T) {

	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	keys := []string{
		"20120615_1430/IMG_0003.xmp",
		"20120615_1430/IMG_0001.xmp",
		"20120615_1430/IMG_0002.xmp",
		"20120615_1430/IMG_0002.jpg",
		"20120615_1430/thumbnail_0001.xmp",
		"20120615_1430/nested/IMG_0000.xmp",
		"20120615_1500/IMG_0004.xmp",
	}

	for _, k := range keys {
		require.NoError(t, bucket.WriteAll(ctx, k, []byte("<rdf:RDF></rdf:RDF>"), nil))
	}

	got, err := MiddleXMPFile(ctx, bucket, "20120615_1430")
	require.NoError(t, err)
	assert.Equal(t, "20120615_1430/IMG_0002.xmp", got)

	got, err = MiddleFileWithExtension(ctx, bucket, "20120615_1430/", ".jpg")
	require.NoError(t, err)
	assert.Equal(t, "20120615_1430/IMG_0002.jpg", got)

	_, err = MiddleFileWithExtension(ctx, bucket, "20120615_1500", "jpg")
	require.Error(t, err)

	var no_data *NoDataError
	require.True(t, errors.As(err, &no_data))
	assert.Equal(t, "jpg", no_data.Extension)
}
