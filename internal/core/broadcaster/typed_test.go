package broadcaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubscribeTo 测试类型化订阅
func TestSubscribeTo(t *testing.T) {
	b := New()
	var got []string

	sub, err := SubscribeTo(b, func(e broadcasterEventA) {
		got = append(got, e.message)
	})
	require.NoError(t, err)

	require.NoError(t, b.PublishMessage(broadcasterEventA{message: "value"}))
	require.NoError(t, b.PublishMessage(&broadcasterEventA{message: "pointer"}))
	require.NoError(t, b.PublishMessage(broadcasterEventB{message: "other"}))

	assert.Equal(t, []string{"value", "pointer"}, got)

	sub.Dispose()
	require.NoError(t, b.PublishMessage(broadcasterEventA{message: "after"}))
	assert.Len(t, got, 2)
}

// TestSubscribeOnceTo 测试类型化一次性订阅
func TestSubscribeOnceTo(t *testing.T) {
	b := New()
	count := 0

	_, err := SubscribeOnceTo(b, func(broadcasterEventB) { count++ })
	require.NoError(t, err)

	require.NoError(t, b.PublishMessage(broadcasterEventB{}))
	require.NoError(t, b.PublishMessage(broadcasterEventB{}))

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, b.SubscriberCount(new(broadcasterEventB)))
}
