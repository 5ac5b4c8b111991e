package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_KeepsSentinelAndAddsStack(t *testing.T) {
	err := Wrap(errSentinel, "save token")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "save token: sentinel", err.Error())
	assert.Same(t, errSentinel, Cause(err))
	assert.Contains(t, StackTrace(err), "TestWrap_KeepsSentinelAndAddsStack")
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(nil))
	assert.Equal(t, "sentinel", StackTrace(errSentinel))
}

func TestJoin(t *testing.T) {
	other := New("other")
	err := Wrapf(Join(errSentinel, other), "decode %s", "job")

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}
