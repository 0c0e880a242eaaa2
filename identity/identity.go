// Package identity 演示用接口（动态分派）统一处理"能报出名字"的类型。
//
// Teacher 和 Student 各自独占一个 Identity。Identity 与 Teacher 实现 Nameable，
// IsNiceName 只需写一次；对比 trap/manual-dispatch 中按类型复制的写法。
package identity

import "fmt"

// NiceSubstring 判定"好名字"的子串，区分大小写
const NiceSubstring = "Adrien"

//go:generate mockgen -source=identity.go -destination=mock_nameable_test.go -package=identity

// Nameable 能按需给出名字的类型
type Nameable interface {
	Name() string
}

// 编译期检查；Student 故意不实现 Nameable
var (
	_ Nameable = Identity{}
	_ Nameable = Teacher{}
)

// Identity 保存一个人的显示名，构造后不可修改
type Identity struct {
	name string
}

func NewIdentity(name string) Identity {
	return Identity{name: name}
}

func (i Identity) Name() string { return i.name }

func (i Identity) String() string {
	return fmt.Sprintf("Identity{name: %q}", i.name)
}

// Teacher 独占一个 Identity，外加薪水
type Teacher struct {
	Identity Identity
	Salary   int
}

func NewTeacher(identity Identity, salary int) Teacher {
	return Teacher{Identity: identity, Salary: salary}
}

// Name 委托给持有的 Identity，而不是复制一份名字
func (t Teacher) Name() string { return t.Identity.Name() }

func (t Teacher) String() string {
	return fmt.Sprintf("Teacher{%v, salary: %d}", t.Identity, t.Salary)
}

// Student 独占一个 Identity，外加班级。
// 没有 Name 方法：要判断学生的名字，传 s.Identity。
type Student struct {
	Identity Identity
	Class    string
}

func NewStudent(identity Identity, class string) Student {
	return Student{Identity: identity, Class: class}
}

func (s Student) String() string {
	return fmt.Sprintf("Student{%v, class: %q}", s.Identity, s.Class)
}
