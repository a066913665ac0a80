package broadcaster

import (
	"reflect"

	pkgif "github.com/zapdaz/go-zapdaz/pkg/interfaces"
)

// resolveChannel 将 Subscribe 的 channel 参数解析为 Channel
//
// 接受：
//   - string：命名通道
//   - pkgif.Channel：有效时原样使用
//   - reflect.Type：消息类型通道
//   - 指针值（如 new(MyEvent)）：其元素类型的消息类型通道
func resolveChannel(channel any) (pkgif.Channel, error) {
	switch c := channel.(type) {
	case nil:
	case string:
		return pkgif.NamedChannel(c), nil
	case pkgif.Channel:
		if c.IsValid() {
			return c, nil
		}
	case reflect.Type:
		return pkgif.TypedChannel(c), nil
	default:
		if typ := reflect.TypeOf(channel); typ.Kind() == reflect.Pointer {
			return pkgif.TypedChannel(typ.Elem()), nil
		}
	}
	return pkgif.Channel{}, invalidChannel(subjectType, channel)
}

// resolveInstance 校验 PublishMessage 的参数并返回其运行时类型
//
// nil、值为 nil 的指针以及通道描述本身（string、Channel、reflect.Type）
// 都不是可用的消息实例。
func resolveInstance(msg any) (reflect.Type, error) {
	switch msg.(type) {
	case nil, string, pkgif.Channel, reflect.Type:
		return nil, invalidChannel(subjectInstance, msg)
	}

	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, invalidChannel(subjectInstance, msg)
	}
	return v.Type(), nil
}

// matches 判断类型为 instance 的消息是否投递给为 registered 注册的回调
func matches(registered, instance reflect.Type) bool {
	if registered == instance {
		return true
	}
	if instance.Kind() == reflect.Pointer && instance.Elem() == registered {
		return true
	}
	return registered.Kind() == reflect.Interface && instance.Implements(registered)
}
