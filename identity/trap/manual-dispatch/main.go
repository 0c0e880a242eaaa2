package manualdispatch

/*
陷阱：不用接口，按类型手写一份份分派函数

问题说明：
  同一个判断"名字里有没有 Adrien"，为 Identity 写一遍，为 Teacher 再写一遍：

    IsNiceNameIdentity(identity.Identity) bool
    IsNiceNameTeacher(identity.Teacher) bool

  每多一种类型就要多复制一对函数，判断逻辑散落在多处，
  改规则（比如换子串）时极易漏改其中一处，导致不同类型结果不一致。

正确做法：
  让类型实现 Nameable（Teacher 委托给自己持有的 Identity），
  判断逻辑只写一次：identity.IsNiceName(n Nameable)。
*/

import (
	"fmt"
	"strings"

	"dispatch-notes/identity"
)

// ❌ 每种类型一份取名函数

func NameOfIdentity(id identity.Identity) string {
	return id.Name()
}

func NameOfTeacher(t identity.Teacher) string {
	return t.Identity.Name()
}

// ❌ 每种类型一份判断函数，逻辑完全重复

func IsNiceNameIdentity(id identity.Identity) bool {
	if strings.Contains(NameOfIdentity(id), "Adrien") {
		return true
	}
	return false
}

func IsNiceNameTeacher(t identity.Teacher) bool {
	if strings.Contains(NameOfTeacher(t), "Adrien") {
		return true
	}
	return false
}

// DemonstrateProblem 对比两种写法：结果相同，但手写分派需要为每种类型复制代码
func DemonstrateProblem() {
	fmt.Println("=== 按类型手写分派 vs 接口分派 ===")
	fmt.Println()

	adrien := identity.NewTeacher(identity.NewIdentity("Adrien BARRAL"), 40_000)
	john := identity.NewStudent(identity.NewIdentity("John SMITH"), "MIR Master")

	fmt.Printf("手写分派: IsNiceNameTeacher(%v) = %v\n", adrien, IsNiceNameTeacher(adrien))
	fmt.Printf("手写分派: IsNiceNameIdentity(%v) = %v\n", john.Identity, IsNiceNameIdentity(john.Identity))

	// ✅ 同一个函数处理所有 Nameable
	fmt.Printf("接口分派: IsNiceName(%v) = %v\n", adrien, identity.IsNiceName(adrien))
	fmt.Printf("接口分派: IsNiceName(%v) = %v\n", john.Identity, identity.IsNiceName(john.Identity))

	fmt.Println()
	fmt.Println("结论：")
	fmt.Println("  1. 两种写法结果一致，但手写分派每加一种类型就多一对函数")
	fmt.Println("  2. 判断规则复制了多份，修改时容易漏改")
	fmt.Println("  3. Teacher 应该委托给 Identity，而不是在外部函数里伸手取字段")
}
