package performance

import (
	"strings"

	"dispatch-notes/identity"
)

// IsNiceNameDirect 直接对具体类型调用，编译器可以内联 Name()
func IsNiceNameDirect(t identity.Teacher) bool {
	return strings.Contains(t.Name(), identity.NiceSubstring)
}

// IsNiceNameSwitch 用 type switch 模拟"标签联合"式分派
func IsNiceNameSwitch(v any) bool {
	switch x := v.(type) {
	case identity.Identity:
		return strings.Contains(x.Name(), identity.NiceSubstring)
	case identity.Teacher:
		return strings.Contains(x.Identity.Name(), identity.NiceSubstring)
	default:
		return false
	}
}
