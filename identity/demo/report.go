package main

import (
	"errors"
	"fmt"

	"dispatch-notes/identity"
	manualdispatch "dispatch-notes/identity/trap/manual-dispatch"
)

var ErrVerdictMismatch = errors.New("verdict mismatch")

// verdict 一个用例在三种写法下的判断结果
type verdict struct {
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Want      bool   `json:"want"`
	Interface bool   `json:"interface"`
	Generic   bool   `json:"generic"`
	Manual    bool   `json:"manual"`
}

func (v verdict) agrees() bool {
	return v.Interface == v.Want && v.Generic == v.Want && v.Manual == v.Want
}

func teacherVerdict(subject string, t identity.Teacher, want bool) verdict {
	return verdict{
		Subject:   subject,
		Name:      t.Name(),
		Want:      want,
		Interface: identity.IsNiceName(t),
		Generic:   identity.IsNiceNameOf(t),
		Manual:    manualdispatch.IsNiceNameTeacher(t),
	}
}

func identityVerdict(subject string, id identity.Identity, want bool) verdict {
	return verdict{
		Subject:   subject,
		Name:      id.Name(),
		Want:      want,
		Interface: identity.IsNiceName(id),
		Generic:   identity.IsNiceNameOf(id),
		Manual:    manualdispatch.IsNiceNameIdentity(id),
	}
}

// evaluate 跑两个典型用例：Adrien 老师为 true，John 学生的 Identity 为 false
func evaluate() []verdict {
	adrien := identity.Teacher{
		Identity: identity.NewIdentity("Adrien BARRAL"),
		Salary:   40_000,
	}
	john := identity.Student{
		Identity: identity.NewIdentity("John SMITH"),
		Class:    "MIR Master",
	}

	return []verdict{
		teacherVerdict("teacher", adrien, true),
		identityVerdict("student.identity", john.Identity, false),
	}
}

func check(verdicts []verdict) error {
	for _, v := range verdicts {
		if !v.agrees() {
			return fmt.Errorf("%s %q: want %v, interface=%v generic=%v manual=%v: %w",
				v.Subject, v.Name, v.Want, v.Interface, v.Generic, v.Manual, ErrVerdictMismatch)
		}
	}
	return nil
}
