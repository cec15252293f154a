package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret123", hash)
	require.True(t, strings.HasPrefix(hash, "$2"), "bcrypt 輸出應內嵌演算法識別")

	// 每次呼叫產生新鹽值，兩次哈希結果不同但都能驗證
	hash2, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
	require.NoError(t, ComparePassword(hash, "secret123"))
	require.NoError(t, ComparePassword(hash2, "secret123"))
}

func TestHashPasswordTooLong(t *testing.T) {
	// bcrypt 上限 72 bytes
	_, err := HashPassword(strings.Repeat("x", 73))
	require.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hash, "secret123"))
	require.Error(t, ComparePassword(hash, "wrong"))
	require.Error(t, ComparePassword("not-a-hash", "secret123"))
}
