package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceObject(t *testing.T) {
	tests := []struct {
		rawKey string
		want   string
	}{
		{rawKey: "photo.jpg", want: "photo.jpg"},
		{rawKey: "my%20photo.jpg", want: "my photo.jpg"},
		{rawKey: "my+photo.jpg", want: "my photo.jpg"},
		{rawKey: "2024%2F05%2Fcat.png", want: "2024/05/cat.png"},
	}

	for _, tc := range tests {
		t.Run(tc.rawKey, func(t *testing.T) {
			src, err := NewSourceObject("uploads", tc.rawKey)
			require.NoError(t, err)
			assert.Equal(t, SourceObject{Bucket: "uploads", Key: tc.want}, src)
		})
	}

	t.Run("malformed escape keeps raw key", func(t *testing.T) {
		src, err := NewSourceObject("uploads", "bad%zz.png")
		require.Error(t, err)
		assert.Equal(t, SourceObject{Bucket: "uploads", Key: "bad%zz.png"}, src)
	})
}

func TestSourceObject_Fail(t *testing.T) {
	cause := errors.New("boom")

	err := SourceObject{Bucket: "uploads", Key: "photo.jpg"}.Fail(cause)

	assert.Equal(t, "uploads", err.Bucket)
	assert.Equal(t, "photo.jpg", err.Key)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error processing object photo.jpg from bucket uploads: boom", err.Error())
}
