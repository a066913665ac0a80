package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// withValues 临时覆盖注入变量
func withValues(t *testing.T, version, buster string) {
	t.Helper()
	oldVersion, oldBuster := Version, BuildTimeBuster
	Version, BuildTimeBuster = version, buster
	t.Cleanup(func() {
		Version, BuildTimeBuster = oldVersion, oldBuster
	})
}

// TestGet_Defaults 测试未注入时的回退值
func TestGet_Defaults(t *testing.T) {
	withValues(t, "", "")

	info := Get()
	assert.Equal(t, DefaultVersion, info.Version)
	assert.Equal(t, DefaultBuildTimeBuster, info.BuildTimeBuster)
	assert.Equal(t, "v0.0.0_b00000000_000000", Tag())
}

// TestGet_Injected 测试注入值
func TestGet_Injected(t *testing.T) {
	withValues(t, "1.4.2", "20240102_030405")

	info := Get()
	assert.Equal(t, "1.4.2", info.Version)
	assert.Equal(t, "v1.4.2_b20240102_030405", info.Tag())
	assert.Contains(t, info.String(), "v1.4.2_b20240102_030405")
}

// TestFallbacks 测试所有回退值
func TestFallbacks(t *testing.T) {
	old := Info{AppName, AppAuthor, Version, BuildTime, BuildTimeBuster, ReleaseBranch}
	AppName, AppAuthor, Version, BuildTime, BuildTimeBuster, ReleaseBranch = "", "", "", "", "", ""
	t.Cleanup(func() {
		AppName, AppAuthor, Version = old.AppName, old.AppAuthor, old.Version
		BuildTime, BuildTimeBuster, ReleaseBranch = old.BuildTime, old.BuildTimeBuster, old.ReleaseBranch
	})

	assert.Equal(t, Info{
		AppName:         "app-name-not-baked-in",
		AppAuthor:       "Michael Prescott",
		Version:         "0.0.0",
		BuildTime:       "January 1, 0000, 00:00:00 am",
		BuildTimeBuster: "00000000_000000",
		ReleaseBranch:   "dev",
	}, Get())
}
