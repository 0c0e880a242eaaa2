package identity

import "strings"

// IsNiceName 通过接口动态分派取名字，名字包含 NiceSubstring 时返回 true。
// Name 只调用一次，没有副作用。
func IsNiceName(n Nameable) bool {
	return strings.Contains(n.Name(), NiceSubstring)
}

// IsNiceNameOf 泛型版本：编译期按具体类型实例化，结果与 IsNiceName 一致
func IsNiceNameOf[T Nameable](v T) bool {
	return strings.Contains(v.Name(), NiceSubstring)
}
