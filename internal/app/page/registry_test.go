package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_Attach 测试按首字母小写的键挂载
func TestRegistry_Attach(t *testing.T) {
	r := NewRegistry("zapdaz")

	index := NewIndex(nil)
	require.True(t, r.Attach(index))
	require.True(t, r.Attach(NewExample1(nil)))

	got, ok := r.Get("index")
	require.True(t, ok)
	assert.Same(t, index, got.(*Index))

	_, ok = r.Get("Index")
	assert.False(t, ok, "键区分大小写")

	assert.Equal(t, []string{"index", "example1"}, r.Keys())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "zapdaz", r.Namespace())
}

// TestRegistry_AttachDuplicate 测试重复挂载保留第一个
func TestRegistry_AttachDuplicate(t *testing.T) {
	r := NewRegistry("zapdaz")

	first := NewBase("Example2", nil)
	second := NewBase("Example2", nil)

	assert.True(t, r.Attach(first))
	assert.False(t, r.Attach(second))

	got, _ := r.Get("example2")
	assert.Same(t, first, got.(*Base))
	assert.Equal(t, 1, r.Len())
}

// TestRegistry_KeysIsCopy 测试返回的键列表是副本
func TestRegistry_KeysIsCopy(t *testing.T) {
	r := NewRegistry("zapdaz")
	r.Attach(NewExample1(nil))

	keys := r.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"example1"}, r.Keys())
}

// TestKey 测试键计算
func TestKey(t *testing.T) {
	assert.Equal(t, "index", Key(NewIndex(nil)))
	assert.Equal(t, "example2", Key(NewExample2(nil)))
}
