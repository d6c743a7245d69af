package memcachefx

import (
	"go.uber.org/fx"
	mem "tusalon/pkg/memcache"
)

var Module = fx.Provide(provideResetTokenStore)

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}
