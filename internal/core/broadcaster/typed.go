package broadcaster

import (
	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// SubscribeTo 以类型化回调订阅消息类型 T
//
//	sub, err := broadcaster.SubscribeTo(b, func(e SceneLoaded) { ... })
//
// 发布 T 或 *T 实例都会触发 fn；值为 nil 的 *T 不会。
func SubscribeTo[T any](b pkgif.Broadcaster, fn func(T)) (pkgif.Subscription, error) {
	return b.Subscribe(pkgif.MessageType[T](), adapt(fn))
}

// SubscribeOnceTo 以类型化回调一次性订阅消息类型 T
func SubscribeOnceTo[T any](b pkgif.Broadcaster, fn func(T)) (pkgif.Subscription, error) {
	return b.SubscribeOnce(pkgif.MessageType[T](), adapt(fn))
}

func adapt[T any](fn func(T)) pkgif.Handler {
	return func(data any) {
		switch v := data.(type) {
		case T:
			fn(v)
		case *T:
			if v != nil {
				fn(*v)
			}
		}
	}
}
