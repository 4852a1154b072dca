package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hasher(t *testing.T) {
	h := SHA256Hasher{}

	// Known digest; documents written by earlier versions of the app
	// must keep verifying.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		h.Hash("password"))

	assert.Equal(t, h.Hash("same"), h.Hash("same"))
	assert.NotEqual(t, h.Hash("one"), h.Hash("two"))
}
